package mstio

import "errors"

var (
	// ErrBadHeader indicates the leading "V E" pair is missing or non-integer.
	ErrBadHeader = errors.New(`mstio: malformed header, want "V E"`)
	// ErrTruncatedWeights indicates fewer than V node-weight tokens.
	ErrTruncatedWeights = errors.New("mstio: truncated node weight data")
	// ErrTruncatedEdges indicates fewer than E complete "u v w" triples.
	ErrTruncatedEdges = errors.New("mstio: truncated edge data")
)
