package stream

import "log/slog"

// StreamOption configures a Decoder.
type StreamOption func(*streamOpts)

type streamOpts struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for truncation diagnostics. The default
// is slog.Default.
func WithLogger(l *slog.Logger) StreamOption {
	return func(o *streamOpts) { o.logger = l }
}

// ClosePolicy decides what a Builder does with a close event that arrives
// while only the root is on the position stack.
type ClosePolicy int

const (
	// CloseIgnore treats a close at the root as a no-op. The root stays
	// the current position and tree construction continues.
	CloseIgnore ClosePolicy = iota
	// CloseError makes a close at the root fail with ErrCloseAtRoot.
	CloseError
)

// BuildOption configures a Builder.
type BuildOption func(*buildOpts)

type buildOpts struct {
	closePolicy ClosePolicy
}

// WithClosePolicy sets the policy for close events at the root. The
// default is CloseIgnore.
func WithClosePolicy(p ClosePolicy) BuildOption {
	return func(o *buildOpts) { o.closePolicy = p }
}
