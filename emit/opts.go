package emit

// config holds Emit's tunables, set through the functional options
// below, the same EncodeOption-style shape the teacher's encode package
// uses.
type config struct {
	depth  int
	colors *Colors
}

// Option configures a call to Emit.
type Option func(*config)

// WithDepth starts emission at depth (in two-space indent units) rather
// than 0, for embedding emitted text inside an already-indented
// context.
func WithDepth(depth int) Option {
	return func(c *config) { c.depth = depth }
}

// WithColors enables ANSI-colorized output via c. A nil Colors (the
// default) emits plain text.
func WithColors(c *Colors) Option {
	return func(cfg *config) { cfg.colors = c }
}
