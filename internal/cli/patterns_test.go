package cli

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsText(t *testing.T) {
	out, _, err := execute(t, "patterns")
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`(?m)^NAME\s+CELLS\s+SIZE$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^gun\s+36\s+9x36$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^pulsar\s+48\s+13x13$`), out)
	assert.Regexp(t, regexp.MustCompile(`(?m)^empty\s+0\s+0x0$`), out)
}

func TestPatternsJSON(t *testing.T) {
	out, _, err := execute(t, "patterns", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   PatternList `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	byName := map[string]PatternInfo{}
	for _, p := range resp.Data {
		byName[p.Name] = p
	}
	assert.Equal(t, PatternInfo{Name: "blinker", Cells: 3, Rows: 1, Cols: 3}, byName["blinker"])
	assert.Equal(t, PatternInfo{Name: "glider", Cells: 5, Rows: 3, Cols: 3}, byName["glider"])
	assert.Contains(t, byName, "soup")
}
