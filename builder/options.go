package builder

import "strconv"

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and deterministic.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns "A".."Z" for idx in [0,25] and falls back to
// DefaultIDFn beyond that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		return DefaultIDFn(idx)
	}

	return string('A' + rune(idx))
}

// BuilderOption customizes builderConfig.
type BuilderOption func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and read by constructors.
type builderConfig struct {
	idFn   IDFn
	weight int64
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn, weight: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID scheme for generated topologies.
// A nil fn keeps the default.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithUniformWeight sets the weight of every generated edge.
// Non-positive values keep the default of 1.
func WithUniformWeight(w int64) BuilderOption {
	return func(c *builderConfig) {
		if w > 0 {
			c.weight = w
		}
	}
}
