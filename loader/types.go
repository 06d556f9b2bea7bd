// SPDX-License-Identifier: MIT

package loader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
)

// ErrMissingColumn indicates the header lacks a required column.
var ErrMissingColumn = errors.New("loader: missing column")

// Column names expected in the two sources.
const (
	ColName      = "name"
	ColType      = "type"
	ColVisitTime = "weight"
	ColFrom      = "node"
	ColTo        = "node.1"
	ColWeight    = "weight"
)

// LocationSink receives one call per location row.
type LocationSink interface {
	AddLocation(name, typ string, visitTime int) error
}

// PathSink receives one call per path row.
type PathSink interface {
	AddPath(a, b string, weight int64) error
}

// Options configures a load.
type Options struct {
	// Strict aborts on the first bad row instead of skipping it.
	Strict bool

	// Logger receives a Warn per skipped row and an Info summary per source.
	Logger *zap.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions skips bad rows and logs nothing.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithStrict makes any bad row fail the whole load.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
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

// RowError pins a failure to one line of one source.
type RowError struct {
	Source string
	Line   int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s line %d: %v", e.Source, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Report summarizes a load.
type Report struct {
	// Locations and Paths count rows that were applied.
	Locations int
	Paths     int

	// Skipped counts rows that were rejected.
	Skipped int

	// Errors holds one *RowError per skipped row, in file order.
	Errors *multierror.Error
}

// Err returns the accumulated row errors, or nil when every row loaded.
func (r *Report) Err() error {
	return r.Errors.ErrorOrNil()
}

func (r *Report) skip(err error) {
	r.Skipped++
	r.Errors = multierror.Append(r.Errors, err)
}

func (r *Report) merge(other *Report) {
	if other == nil {
		return
	}
	r.Locations += other.Locations
	r.Paths += other.Paths
	r.Skipped += other.Skipped
	if other.Errors != nil {
		r.Errors = multierror.Append(r.Errors, other.Errors.Errors...)
	}
}
