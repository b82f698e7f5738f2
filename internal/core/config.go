package core

import "strconv"

// Config controls the side effects of a cycle-detecting run. None of the
// fields influence which generation is detected as a repeat.
type Config struct {
	// Draws renders each generation before it is advanced.
	Draws bool
	// Returns materialises a Result once the repeat is found.
	Returns bool
	// SleepTime is the delay in milliseconds between drawn generations.
	SleepTime int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Draws: false, Returns: true, SleepTime: 0}
}

// FromMap populates a Config from a string map, starting from defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Merge(cfg)
}

// Merge overlays the recognised keys of cfg on c. Values that fail to parse
// are ignored.
func (c Config) Merge(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["draws"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Draws = parsed
		}
	}
	if v, ok := cfg["returns"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Returns = parsed
		}
	}
	if v, ok := cfg["sleeptime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SleepTime = parsed
		}
	}
	return c
}

// Parameters reports the configuration as a parameter snapshot.
func (c Config) Parameters() ParameterSnapshot {
	return ParameterSnapshot{Params: []Parameter{
		{Key: "draws", Label: "Draw generations", Type: ParamTypeBool, Value: strconv.FormatBool(c.Draws)},
		{Key: "returns", Label: "Return result", Type: ParamTypeBool, Value: strconv.FormatBool(c.Returns)},
		{Key: "sleeptime", Label: "Sleep time (ms)", Type: ParamTypeInt, Value: strconv.Itoa(c.SleepTime)},
	}}
}
