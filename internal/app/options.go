package app

import "io"

// Default configuration values.
const (
	DefaultChunkSize = 4096
	DefaultSource    = SourceRope
)

// Option configures an Application during creation.
type Option func(*Application)

// WithLogger sets the logger. Defaults to NullLogger.
func WithLogger(l *Logger) Option {
	return func(a *Application) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithOutput sets where chunk reports are written.
func WithOutput(w io.Writer) Option {
	return func(a *Application) {
		if w != nil {
			a.out = w
		}
	}
}

// WithSource selects how files are turned into cursors.
func WithSource(kind SourceKind) Option {
	return func(a *Application) {
		a.source = kind
	}
}

// WithChunkSize sets the read size used by the bytes source.
func WithChunkSize(n int) Option {
	return func(a *Application) {
		a.chunkSize = n
	}
}

// WithReverse makes each walk return to the first chunk after reaching
// the last, for sources that can backtrack.
func WithReverse() Option {
	return func(a *Application) {
		a.reverse = true
	}
}

// WithTable aligns report columns for terminal output.
func WithTable() Option {
	return func(a *Application) {
		a.table = true
	}
}
