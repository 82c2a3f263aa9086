// Command shortestdistance loads a weighted edge list and answers
// shortest-distance queries typed on standard input.
//
// Usage:
//
//	shortestdistance [-log-level level] <edge-file>
//
// Each line of edge-file holds "<source> <destination> <weight>" for one
// directed edge with a non-negative integer weight.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/katalvlaran/graphsearch/edgelist"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	commandName = "shortestdistance"

	statusOK    = 0
	statusError = 1
	statusUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process exit, so tests can drive it.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(commandName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	logLevel := flags.String("log-level", zerolog.LevelWarnValue, "diagnostic log level (trace, debug, info, warn, error, disabled)")
	if err := flags.Parse(args); err != nil {
		return statusUsage
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(stdout, "Error, the command should be:")
		fmt.Fprintf(stdout, "%s filename\n", commandName)
		return statusUsage
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		return statusUsage
	}
	logger := newLogger(stderr, level)

	path := flags.Arg(0)
	began := time.Now()
	g, err := edgelist.Load(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("cannot load edge list")
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(stdout, "Unable to open file.")
		} else {
			fmt.Fprintln(stdout, "Error reading file.")
		}
		return statusError
	}
	logger.Debug().
		Str("file", path).
		Int("sources", len(g)).
		Int("edges", g.EdgeCount()).
		Int("nodes", len(edgelist.Nodes(g))).
		Dur("took", time.Since(began)).
		Msg("edge list loaded")

	newSession(g, stdin, stdout, logger).loop()

	return statusOK
}

// newLogger writes human-readable diagnostics to w, coloured only when w is
// a terminal.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: time.TimeOnly,
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("cmd", commandName).Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
