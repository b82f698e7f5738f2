package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single configuration value.
type Parameter struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
}

// ParameterSnapshot captures the effective set of configuration values.
type ParameterSnapshot struct {
	Params []Parameter `json:"params"`
}

// LogAttrs flattens the snapshot into alternating key/value pairs for slog.
func (s ParameterSnapshot) LogAttrs() []any {
	attrs := make([]any, 0, 2*len(s.Params))
	for _, p := range s.Params {
		attrs = append(attrs, p.Key, p.Value)
	}
	return attrs
}
