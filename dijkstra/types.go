package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/netomics/network"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested endpoint is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that the cost function produced a negative
	// or NaN cost for some edge.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilCost indicates that WithCost received a nil function.
	ErrNilCost = errors.New("dijkstra: cost function is nil")

	// ErrNoPath indicates that the target is unreachable from the source
	// (or lies beyond MaxDistance).
	ErrNoPath = errors.New("dijkstra: no path between nodes")
)

// CostFunc maps an edge to its non-negative traversal cost.
// Returning +Inf marks the edge as impassable.
type CostFunc func(e network.Edge) float64

// HopCost charges 1 per edge; shortest paths are fewest-hop paths.
func HopCost(network.Edge) float64 { return 1 }

// StrengthCost charges 1-|w|, so strong correlations (|w| near 1) are short.
// Weights with |w| > 1 are clamped to cost 0.
func StrengthCost(e network.Edge) float64 {
	c := 1 - math.Abs(e.Weight)
	if c < 0 {
		return 0
	}

	return c
}

// AbsCost charges |w|.
func AbsCost(e network.Edge) float64 { return math.Abs(e.Weight) }

// CostByName resolves "hop", "strength" or "abs" to a CostFunc.
func CostByName(name string) (CostFunc, bool) {
	switch name {
	case "", "hop":
		return HopCost, true
	case "strength":
		return StrengthCost, true
	case "abs":
		return AbsCost, true
	default:
		return nil, false
	}
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// ReturnPath  – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance – nodes whose distance would exceed this value are not settled.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Cost        – edge cost function. Default is HopCost.
type Options struct {
	Source      string
	ReturnPath  bool
	MaxDistance float64
	Cost        CostFunc
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithCost sets the edge cost function. A nil function panics with ErrNilCost.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic(ErrNilCost.Error())
		}
		o.Cost = fn
	}
}

// DefaultOptions returns Options for source with no distance cap and hop costs.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
		Cost:        HopCost,
	}
}
