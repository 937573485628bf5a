package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
)

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(WithSource("nope")); !errors.Is(err, ErrUnknownSource) {
		t.Errorf("unknown source: got %v", err)
	}
	if _, err := New(WithChunkSize(0)); !errors.Is(err, ErrInvalidChunkSize) {
		t.Errorf("zero chunk size: got %v", err)
	}
	if _, err := New(); err != nil {
		t.Errorf("defaults: %v", err)
	}
}

func TestWalkReaderSources(t *testing.T) {
	text := strings.Repeat("some text 世界\n", 200)

	tests := []struct {
		source   SourceKind
		utf8     bool
		multiple bool
	}{
		{SourceRope, true, true},
		{SourceText, true, true},
		{SourceBytes, false, true},
		{SourceFlat, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.source), func(t *testing.T) {
			var out bytes.Buffer
			a, err := New(WithSource(tt.source), WithChunkSize(100), WithOutput(&out))
			if err != nil {
				t.Fatal(err)
			}

			sum, err := a.WalkReader("mem", strings.NewReader(text))
			if err != nil {
				t.Fatalf("WalkReader: %v", err)
			}
			if sum.Bytes != len(text) {
				t.Errorf("Bytes = %d, want %d", sum.Bytes, len(text))
			}
			if sum.UTF8Aware != tt.utf8 {
				t.Errorf("UTF8Aware = %v, want %v", sum.UTF8Aware, tt.utf8)
			}
			if (sum.Chunks > 1) != tt.multiple {
				t.Errorf("Chunks = %d", sum.Chunks)
			}
			if !strings.HasPrefix(out.String(), "== mem\t"+string(tt.source)) {
				t.Errorf("missing header: %q", out.String()[:min(40, out.Len())])
			}
		})
	}
}

func TestWalkReaderReverse(t *testing.T) {
	var out, logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &logs})
	a, err := New(WithReverse(), WithOutput(&out), WithLogger(logger), WithTable())
	if err != nil {
		t.Fatal(err)
	}

	sum, err := a.WalkReader("mem", strings.NewReader(strings.Repeat("x", 2000)))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Backtracked != sum.Chunks-1 {
		t.Errorf("Backtracked = %d, want %d", sum.Backtracked, sum.Chunks-1)
	}
	if !strings.Contains(out.String(), "bwd") {
		t.Error("report has no backward rows")
	}
	if !strings.Contains(logs.String(), "fwd chunk 0") {
		t.Errorf("debug log missing chunk lines: %q", logs.String())
	}
}

func TestWalkReaderWarnsWhenSourceCannotBacktrack(t *testing.T) {
	var logs bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &logs})
	a, err := New(WithSource(SourceBytes), WithChunkSize(4), WithReverse(), WithOutput(&bytes.Buffer{}), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.WalkReader("mem", strings.NewReader("0123456789")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(logs.String(), "source cannot backtrack") {
		t.Errorf("expected warning, got %q", logs.String())
	}
}

func TestWalkReaderReadError(t *testing.T) {
	boom := errors.New("boom")
	for _, source := range []SourceKind{SourceRope, SourceBytes} {
		a, err := New(WithSource(source), WithOutput(&bytes.Buffer{}))
		if err != nil {
			t.Fatal(err)
		}
		_, err = a.WalkReader("bad", iotest.ErrReader(boom))

		var opErr *OperationError
		if !errors.As(err, &opErr) || opErr.Op != "read" || !errors.Is(err, boom) {
			t.Errorf("%s: got %v", source, err)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(path, []byte("hello\nworld\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	a, err := New(WithOutput(&out))
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Run(nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("Run(nil) = %v, want ErrNoInput", err)
	}
	if err := a.Run([]string{path}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "total\t1\t12") {
		t.Errorf("unexpected report: %q", out.String())
	}

	err = a.Run([]string{filepath.Join(dir, "missing.txt")})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}
