// Package main is the entry point for chunkwalk, which walks files chunk by
// chunk through the cursor variants and reports what each one sees.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/dshills/chunkcursor/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	source    string
	chunkSize int
	reverse   bool
	logLevel  string
	files     []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	level, ok := app.ParseLogLevel(opts.logLevel)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		return 1
	}
	source, err := app.ParseSourceKind(opts.source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfg := app.DefaultLoggerConfig()
	cfg.Level = level

	appOpts := []app.Option{
		app.WithLogger(app.NewLogger(cfg)),
		app.WithSource(source),
		app.WithChunkSize(opts.chunkSize),
	}
	if opts.reverse {
		appOpts = append(appOpts, app.WithReverse())
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		appOpts = append(appOpts, app.WithTable())
	}

	application, err := app.New(appOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	if err := application.Run(opts.files); err != nil {
		if errors.Is(err, app.ErrNoInput) {
			flag.Usage()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.source, "source", string(app.DefaultSource), "Cursor source: rope, text, bytes or flat")
	flag.StringVar(&opts.source, "s", string(app.DefaultSource), "Cursor source (shorthand)")
	flag.IntVar(&opts.chunkSize, "chunk-size", app.DefaultChunkSize, "Read size for the bytes source")
	flag.BoolVar(&opts.reverse, "reverse", false, "Backtrack to the first chunk after reaching the last")
	flag.BoolVar(&opts.reverse, "r", false, "Backtrack after reaching the last chunk (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "chunkwalk - walk files chunk by chunk\n\n")
		fmt.Fprintf(os.Stderr, "Usage: chunkwalk [options] files...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  chunkwalk file.txt                  Walk a file through a rope\n")
		fmt.Fprintf(os.Stderr, "  chunkwalk -r file.txt               Walk forward, then back\n")
		fmt.Fprintf(os.Stderr, "  chunkwalk -s bytes -chunk-size 7 f  Walk raw 7-byte reads\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("chunkwalk %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.files = flag.Args()
	return opts
}
