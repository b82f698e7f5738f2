package life

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestDrawBoardGolden(t *testing.T) {
	b := FromCoords(blinker())
	var buf bytes.Buffer
	require.NoError(t, b.Draw(&buf))
	newGolden(t).Assert(t, "blinker_board", buf.Bytes())
}

func TestDrawResultGolden(t *testing.T) {
	res := runPattern(t, pulsar(13, 13))
	var buf bytes.Buffer
	require.NoError(t, res.Draw(&buf))
	newGolden(t).Assert(t, "pulsar_result", buf.Bytes())
}

func TestDrawShape(t *testing.T) {
	b := FromCoords(blinker())
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, Size+2)
	for i, line := range lines {
		assert.Len(t, line, 2*(Size+2), "line %d", i)
		assert.True(t, strings.HasPrefix(line, WallGlyph), "line %d", i)
		assert.True(t, strings.HasSuffix(line, WallGlyph), "line %d", i)
	}
	assert.Equal(t, strings.Repeat(WallGlyph, Size+2), lines[0])
	assert.Equal(t, lines[0], lines[Size+1])

	var empty Board
	for _, line := range strings.Split(strings.TrimSuffix(empty.String(), "\n"), "\n")[1 : Size+1] {
		assert.Equal(t, WallGlyph+strings.Repeat(DeadGlyph, Size)+WallGlyph, line)
	}
}

func TestDrawIsIdempotent(t *testing.T) {
	b := FromCoords(pulsar(3, 3))
	var first, second bytes.Buffer
	require.NoError(t, b.Draw(&first))
	require.NoError(t, b.Draw(&second))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDrawReportsWriteErrors(t *testing.T) {
	var b Board
	assert.Error(t, b.Draw(failingWriter{}))
	assert.Error(t, Result{}.Draw(failingWriter{}))
}

func TestDrawFailureDoesNotStopRun(t *testing.T) {
	g := NewGame(FromCoords(blinker()))
	g.SetOutput(failingWriter{})
	cfg := g.Config()
	cfg.Draws = true
	g.Configure(cfg)

	res, ok := g.Run()
	require.True(t, ok)
	assert.Equal(t, Alternating, res.Kind())
}
