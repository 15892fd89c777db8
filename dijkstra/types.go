package dijkstra

import (
	"errors"
	"math"

	"go.uber.org/zap"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNilWeightFunc indicates that no weight extractor was supplied.
	ErrNilWeightFunc = errors.New("dijkstra: weight function is nil")

	// ErrVertexNotFound indicates that the source vertex is nil or does not
	// belong to the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight indicates that an edge weight is NaN.
	ErrBadWeight = errors.New("dijkstra: edge weight is NaN")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that the predecessor chain never reaches the source.
	ErrNoPath = errors.New("dijkstra: no path to target")
)

// Weight is the set of numeric edge payloads ShortestPaths accepts directly.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	ReturnPath       bool        // Whether to return the predecessor map
	SkipValidation   bool        // Skip the negative/NaN weight pre-scan
	MaxDistance      float64     // Maximum distance to expand
	InfEdgeThreshold float64     // Weight threshold at or above which edges are non-traversable
	Logger           *zap.Logger // Debug logger; never nil after DefaultOptions
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessor map, validation on, no distance cap, no impassable edges,
// and a no-op logger.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		SkipValidation:   false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           zap.NewNop(),
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithSkipValidation disables the O(E) weight pre-scan.
func WithSkipValidation() Option {
	return func(o *Options) {
		o.SkipValidation = true
	}
}

// WithMaxDistance caps exploration: a vertex whose shortest distance exceeds
// max is never relaxed, reports +Inf and has no predecessor entry. Negative or NaN values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes edges whose weight is >= threshold impassable.
// Zero, negative or NaN values make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithLogger routes debug output to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func (o Options) validate() error {
	if math.IsNaN(o.MaxDistance) || o.MaxDistance < 0 {
		return ErrBadMaxDistance
	}
	if math.IsNaN(o.InfEdgeThreshold) || o.InfEdgeThreshold <= 0 {
		return ErrBadInfThreshold
	}

	return nil
}
