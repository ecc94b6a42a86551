package collide2d

// Default tunables, matched to the values given in the external interface
// table: a floor on the line-thickness epsilon, a scale factor applied to
// shape size, and iteration caps for GJK and EPA.
const (
	DefaultEPSFloor   = 1e-7
	DefaultEPSScale   = 1e-9
	DefaultGJKMaxIter = 64
	DefaultEPAMaxIter = 64
)

// Config holds the tunables threaded through every query. It is built
// with NewConfig and a set of Option values rather than exposed as a
// struct literal, so new fields can be added without breaking callers.
type Config struct {
	EPSFloor   float64
	EPSScale   float64
	GJKMaxIter int
	EPAMaxIter int
}

// Option configures a Config built by NewConfig.
type Option func(*Config)

// WithEPSFloor overrides the minimum line-thickness epsilon.
func WithEPSFloor(v float64) Option {
	return func(c *Config) { c.EPSFloor = v }
}

// WithEPSScale overrides the epsilon scale factor applied to shape size.
func WithEPSScale(v float64) Option {
	return func(c *Config) { c.EPSScale = v }
}

// WithGJKMaxIter overrides the GJK iteration cap.
func WithGJKMaxIter(n int) Option {
	return func(c *Config) { c.GJKMaxIter = n }
}

// WithEPAMaxIter overrides the EPA iteration cap.
func WithEPAMaxIter(n int) Option {
	return func(c *Config) { c.EPAMaxIter = n }
}

// NewConfig builds a Config from the given options, starting from the
// package defaults.
func NewConfig(opts ...Option) Config {
	c := Config{
		EPSFloor:   DefaultEPSFloor,
		EPSScale:   DefaultEPSScale,
		GJKMaxIter: DefaultGJKMaxIter,
		EPAMaxIter: DefaultEPAMaxIter,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// DefaultConfig is the Config used by Overlaps and Penetration.
var DefaultConfig = NewConfig()

// epsFor derives the query-scoped line-thickness epsilon for a pair of
// shapes: the larger of their bounding radii, scaled by cfg.EPSScale and
// clamped above cfg.EPSFloor. It is computed fresh for every query rather
// than cached, so two queries never share or mutate state.
func epsFor(a, b Shape, cfg Config) float64 {
	scale := a.BoundingRadius()
	if r := b.BoundingRadius(); r > scale {
		scale = r
	}
	eps := cfg.EPSScale * scale
	if eps < cfg.EPSFloor {
		eps = cfg.EPSFloor
	}
	return eps
}
