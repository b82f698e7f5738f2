package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	Pattern string
	File    string
	Scale   int
	TPS     int
	Params  KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "gun", Scale: 16, TPS: 10}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "built-in pattern to run")
	fs.StringVar(&c.File, "file", c.File, "YAML pattern file (overrides -pattern)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Var(&c.Params, "param", "pattern parameter in key=value form (repeatable)")
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[key] = value
	}
	return out
}
