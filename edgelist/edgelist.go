// Package edgelist reads directed weighted edge lists into a
// core.WeightedAdjacency.
//
// Format: one edge per line, three whitespace-separated tokens
//
//	<source> <destination> <weight>
//
// where weight is a non-negative base-10 integer. Lines holding only
// whitespace are skipped. Edges are appended to the source's successor list
// in file order; duplicates and self-loops are kept as written. Destinations
// do not become keys of the mapping unless they also appear as a source.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphsearch/core"
)

// Sentinel errors describing why a line was rejected. They are always
// wrapped in a *ParseError carrying the line number.
var (
	// ErrTokenCount indicates a line without exactly three tokens.
	ErrTokenCount = errors.New("edgelist: expected <source> <destination> <weight>")

	// ErrBadWeight indicates a weight that is not a base-10 integer.
	ErrBadWeight = errors.New("edgelist: weight is not an integer")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("edgelist: weight is negative")
)

// maxLineBytes bounds a single line; node names are expected to be short.
const maxLineBytes = 1 << 20

// Graph is the mapping produced by Read and Load.
type Graph = core.WeightedAdjacency[string, int64]

// ParseError reports a malformed line.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, untrimmed
	Err  error  // one of ErrTokenCount, ErrBadWeight, ErrNegativeWeight
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses an edge list from r. It stops at the first malformed line and
// returns a *ParseError; I/O errors from r are returned wrapped.
func Read(r io.Reader) (Graph, error) {
	g := Graph{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) != 3 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrTokenCount}
		}

		w, err := strconv.ParseInt(tokens[2], 10, 64)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: fmt.Errorf("%w: %v", ErrBadWeight, err)}
		}
		if w < 0 {
			return nil, &ParseError{Line: lineNo, Text: line, Err: ErrNegativeWeight}
		}

		g.AddEdge(tokens[0], tokens[1], w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read after line %d: %w", lineNo, err)
	}

	return g, nil
}

// Load opens path and parses it with Read. Open failures keep their
// *fs.PathError, so errors.Is(err, fs.ErrNotExist) identifies a missing file.
func Load(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %s: %w", path, err)
	}

	return g, nil
}

// Nodes returns every node mentioned in g, as a source or a destination.
func Nodes(g Graph) map[string]struct{} {
	nodes := make(map[string]struct{}, len(g))
	for src, edges := range g {
		nodes[src] = struct{}{}
		for _, e := range edges {
			nodes[e.Node()] = struct{}{}
		}
	}

	return nodes
}
