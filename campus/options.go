// SPDX-License-Identifier: MIT

package campus

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/prim_kruskal"
)

// DefaultBridgeWeight is the weight proposed for each bridging path.
const DefaultBridgeWeight int64 = 100

// Options holds Map configuration.
type Options struct {
	// Logger receives Debug events for mutations and analyses.
	Logger *zap.Logger

	// BridgeWeight is attached to every proposed bridge in Connectivity.
	BridgeWeight int64

	// MSTMethod is prim_kruskal.MethodKruskal or prim_kruskal.MethodPrim.
	MSTMethod string
}

// Option configures a Map.
type Option func(*Options)

// DefaultOptions returns a no-op logger, the default bridge weight and Kruskal.
func DefaultOptions() Options {
	return Options{
		Logger:       zap.NewNop(),
		BridgeWeight: DefaultBridgeWeight,
		MSTMethod:    prim_kruskal.MethodKruskal,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBridgeWeight overrides the weight of proposed bridges.
func WithBridgeWeight(w int64) Option {
	return func(o *Options) {
		o.BridgeWeight = w
	}
}

// WithMSTMethod selects the spanning-tree algorithm.
func WithMSTMethod(method string) Option {
	return func(o *Options) {
		o.MSTMethod = method
	}
}
