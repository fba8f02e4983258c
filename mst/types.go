// Package mst defines result types, configuration options and sentinel
// errors for extended-MST computation, and the Compute dispatcher that
// selects between Kruskal and Prim.
package mst

import (
	"errors"
	"math"

	"github.com/katalvlaran/extmst/core"
)

// ErrNilGraph indicates a nil *core.Graph was passed to the solver.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrDisconnected indicates that fewer than |V|-1 edges could be accepted,
// so no spanning tree covers all nodes. This is a computed outcome of a
// valid input, distinct from internal failures.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrRootOutOfRange indicates that the Prim start vertex is outside [0, V).
var ErrRootOutOfRange = errors.New("mst: root index out of range")

// ErrUnknownMethod indicates an Options.Method value that names no
// implemented algorithm.
var ErrUnknownMethod = errors.New("mst: unknown method")

// InfiniteCost is the effective cost assigned to an edge referencing an
// endpoint outside [0, V). Such edges sort last and are never accepted.
const InfiniteCost = int64(math.MaxInt64)

// MethodKruskal selects Kruskal's algorithm (global sort + union-find).
const MethodKruskal = "kruskal"

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// TreeEdge is an accepted edge of the computed spanning tree, annotated
// with both endpoint weights and the effective cost for reporting.
type TreeEdge struct {
	// U and V are the endpoint node indices.
	U int
	V int

	// Weight is the base edge weight w_e.
	Weight int64

	// UWeight and VWeight are the endpoint node weights w_u and w_v.
	UWeight int64
	VWeight int64

	// EffectiveCost is w_e + w_u + w_v, the value the tree minimizes.
	EffectiveCost int64
}

// Options configures which algorithm Compute runs and, for Prim, the start
// vertex. Use DefaultOptions() for the standard setup (Kruskal).
type Options struct {
	// Method is MethodKruskal or MethodPrim.
	Method string

	// Root is the start vertex index for Prim. Ignored by Kruskal.
	Root int
}

// Option configures Options. Each Option mutates the pointed Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodKruskal, MethodPrim.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithRoot returns an Option that sets Prim's start vertex index.
// Ignored when Method == MethodKruskal.
func WithRoot(root int) Option {
	return func(o *Options) {
		o.Root = root
	}
}

// DefaultOptions returns Options initialized for Kruskal with root 0.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute runs the extended-MST algorithm selected by the applied options
// (Kruskal when none are given).
//
//   - Method == MethodKruskal: calls Kruskal(g).
//   - Method == MethodPrim:    calls Prim(g, Root).
//   - otherwise:               returns ErrUnknownMethod.
//
// This is optional scaffolding for callers that pick the algorithm at run
// time; Kruskal and Prim can still be called directly.
func Compute(g *core.Graph, opts ...Option) ([]TreeEdge, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, cfg.Root)
	default:
		return nil, 0, ErrUnknownMethod
	}
}
