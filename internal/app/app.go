package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Application walks files chunk by chunk and reports what it sees.
type Application struct {
	logger    *Logger
	out       io.Writer
	source    SourceKind
	chunkSize int
	reverse   bool
	table     bool
}

// Summary totals one walk.
type Summary struct {
	Name        string
	Source      SourceKind
	UTF8Aware   bool
	Chunks      int
	Bytes       int
	Backtracked int
}

// New creates an Application with the given options.
func New(opts ...Option) (*Application, error) {
	a := &Application{
		logger:    NullLogger,
		out:       os.Stdout,
		source:    DefaultSource,
		chunkSize: DefaultChunkSize,
	}
	for _, opt := range opts {
		opt(a)
	}

	if _, err := ParseSourceKind(string(a.source)); err != nil {
		return nil, err
	}
	if a.chunkSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChunkSize, a.chunkSize)
	}
	return a, nil
}

// Run walks each file in order and stops at the first failure.
func (a *Application) Run(files []string) error {
	if len(files) == 0 {
		return ErrNoInput
	}
	for _, path := range files {
		if _, err := a.WalkFile(path); err != nil {
			return err
		}
	}
	return nil
}

// WalkFile opens path and walks it.
func (a *Application) WalkFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, &OperationError{Op: "open", Target: path, Err: err}
	}
	defer f.Close()

	return a.WalkReader(path, f)
}

// WalkReader walks the content of r, writing one report line per chunk.
func (a *Application) WalkReader(name string, r io.Reader) (Summary, error) {
	log := a.logger.WithField("file", name).WithField("source", a.source)

	c, readErr, err := a.newCursor(r)
	if err != nil {
		return Summary{}, &OperationError{Op: "read", Target: name, Err: err}
	}

	sum := Summary{Name: name, Source: a.source, UTF8Aware: c.UTF8Aware()}
	w, flush := a.writer()
	fmt.Fprintf(w, "== %s\t%s\tutf8=%t\n", name, a.source, sum.UTF8Aware)

	_, sum.Backtracked = Walk(c, a.reverse, func(st ChunkStat) {
		if st.Dir == Forward {
			sum.Chunks++
			sum.Bytes += st.Bytes
		}
		if log.Enabled(LogLevelDebug) {
			log.Debug("%s chunk %d: %d bytes", st.Dir, st.Index, st.Bytes)
		}
		graphemes := "-"
		if st.Graphemes >= 0 {
			graphemes = fmt.Sprint(st.Graphemes)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", st.Dir, st.Index, st.Bytes, st.Runes, graphemes)
	})

	if err := readErr(); err != nil {
		return sum, &OperationError{Op: "read", Target: name, Err: err}
	}
	if a.reverse && sum.Backtracked == 0 && sum.Chunks > 1 {
		log.Warn("source cannot backtrack")
	}

	fmt.Fprintf(w, "total\t%d\t%d\n", sum.Chunks, sum.Bytes)
	if err := flush(); err != nil {
		return sum, &OperationError{Op: "write", Target: name, Err: err}
	}
	log.Info("walked %d chunks, %d bytes", sum.Chunks, sum.Bytes)
	return sum, nil
}

// writer returns the report writer and a function that flushes it.
func (a *Application) writer() (io.Writer, func() error) {
	if !a.table {
		return a.out, noError
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	return tw, tw.Flush
}
