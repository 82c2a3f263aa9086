package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphsearch/dijkstra"
	"github.com/katalvlaran/graphsearch/edgelist"
	"github.com/rs/zerolog"
)

// session is the interactive query loop over one loaded graph.
type session struct {
	graph edgelist.Graph
	in    *bufio.Scanner
	out   io.Writer
	log   zerolog.Logger
}

func newSession(g edgelist.Graph, in io.Reader, out io.Writer, log zerolog.Logger) *session {
	return &session{graph: g, in: bufio.NewScanner(in), out: out, log: log}
}

// loop asks for start and end locations until the user answers anything but
// "y" to the continue prompt, or input ends.
func (s *session) loop() {
	for {
		start, ok := s.prompt("Enter the starting location: ")
		if !ok {
			break
		}
		end, ok := s.prompt("Enter the ending location: ")
		if !ok {
			break
		}

		s.answer(start, end)

		again, ok := s.prompt("Enter new locations(y/n)? ")
		if !ok {
			break
		}
		if again != "y" {
			fmt.Fprintln(s.out, "Good bye.")
			return
		}
	}

	// input ended in the middle of a prompt line
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Good bye.")
}

// prompt prints msg and reads one line. ok is false at end of input.
func (s *session) prompt(msg string) (string, bool) {
	fmt.Fprint(s.out, msg)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			s.log.Error().Err(err).Msg("reading input")
		}
		return "", false
	}

	return strings.TrimSpace(s.in.Text()), true
}

// answer prints the shortest distance from start to end, or why there is none.
func (s *session) answer(start, end string) {
	if _, ok := s.graph[start]; !ok {
		s.log.Debug().Str("start", start).Msg("start has no outgoing edges")
		fmt.Fprintln(s.out, "Starting location does not exist.")
		return
	}

	d, err := dijkstra.ShortestPath(start, s.graph, end)
	if err != nil {
		s.log.Error().Err(err).Str("start", start).Str("end", end).Msg("shortest path failed")
		fmt.Fprintln(s.out, "Error:", err)
		return
	}
	s.log.Debug().Str("start", start).Str("end", end).Int64("distance", d).Msg("query")

	if dijkstra.IsNotFound(d) {
		fmt.Fprintln(s.out, "Ending location cannot be reached or does not exist.")
		return
	}
	fmt.Fprintf(s.out, "The shortest distance from %s to %s is %d\n", start, end, d)
}
