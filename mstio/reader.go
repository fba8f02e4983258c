// Package mstio implements the graph-description reader.
package mstio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/extmst/core"
)

// ReadGraph parses a graph description from r into a populated *core.Graph.
//
// The stream is consumed token by token: a "V E" header, V node weights in
// index order, then E "u v w" edge triples. Any missing or non-integer
// token fails the read with the matching sentinel (ErrBadHeader,
// ErrTruncatedWeights, ErrTruncatedEdges) wrapped with the offending
// position; out-of-range edge endpoints surface core.ErrEndpointOutOfRange.
//
// Complexity: O(V + E). The entire model is held in memory.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Header: V and E.
	v, err := nextInt(sc, ErrBadHeader)
	if err != nil {
		return nil, err
	}
	e, err := nextInt(sc, ErrBadHeader)
	if err != nil {
		return nil, err
	}
	g, err := core.New(v, e)
	if err != nil {
		return nil, fmt.Errorf("%w: V=%d E=%d: %w", ErrBadHeader, v, e, err)
	}

	// V node weights in index order.
	for i := 0; i < v; i++ {
		w, errW := nextInt64(sc, ErrTruncatedWeights)
		if errW != nil {
			return nil, fmt.Errorf("node %d: %w", i, errW)
		}
		if errS := g.SetNodeWeight(i, w); errS != nil {
			return nil, fmt.Errorf("mstio: node %d: %w", i, errS)
		}
	}

	// E edge triples.
	for i := 0; i < e; i++ {
		u, errU := nextInt(sc, ErrTruncatedEdges)
		if errU != nil {
			return nil, fmt.Errorf("edge %d: %w", i, errU)
		}
		to, errV := nextInt(sc, ErrTruncatedEdges)
		if errV != nil {
			return nil, fmt.Errorf("edge %d: %w", i, errV)
		}
		w, errW := nextInt64(sc, ErrTruncatedEdges)
		if errW != nil {
			return nil, fmt.Errorf("edge %d: %w", i, errW)
		}
		if errA := g.AddEdge(i, u, to, w); errA != nil {
			return nil, fmt.Errorf("mstio: edge %d (%d,%d): %w", i, u, to, errA)
		}
	}

	return g, nil
}

// nextInt scans one token and parses it as an int. A missing token yields
// the supplied sentinel; a non-integer token wraps the same sentinel with
// the raw text.
func nextInt(sc *bufio.Scanner, missing error) (int, error) {
	tok, err := nextToken(sc, missing)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: bad token %q", missing, tok)
	}

	return n, nil
}

// nextInt64 is nextInt for 64-bit weights.
func nextInt64(sc *bufio.Scanner, missing error) (int64, error) {
	tok, err := nextToken(sc, missing)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad token %q", missing, tok)
	}

	return n, nil
}

// nextToken advances the scanner by one word, distinguishing underlying
// read errors from plain end-of-input.
func nextToken(sc *bufio.Scanner, missing error) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("mstio: read: %w", err)
		}

		return "", missing
	}

	return sc.Text(), nil
}
