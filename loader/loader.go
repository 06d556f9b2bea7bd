// SPDX-License-Identifier: MIT

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusnav/campus"
)

const bom = "\ufeff"

// LoadLocations reads location rows from r into sink.
func LoadLocations(r io.Reader, sink LocationSink, opts ...Option) (*Report, error) {
	return LoadLocationsNamed("locations", r, sink, opts...)
}

// LoadLocationsNamed is LoadLocations with a source label used in row errors.
func LoadLocationsNamed(source string, r io.Reader, sink LocationSink, opts ...Option) (*Report, error) {
	rep := &Report{}
	err := scan(source, r, []string{ColName, ColType, ColVisitTime}, options(opts), rep,
		func(row []string) error {
			visit, err := campus.ParseVisitTime(row[2])
			if err != nil {
				return err
			}
			if err = sink.AddLocation(row[0], row[1], visit); err != nil {
				return err
			}
			rep.Locations++

			return nil
		})

	return rep, err
}

// LoadPaths reads path rows from r into sink. Every endpoint must already exist.
func LoadPaths(r io.Reader, sink PathSink, opts ...Option) (*Report, error) {
	return LoadPathsNamed("paths", r, sink, opts...)
}

// LoadPathsNamed is LoadPaths with a source label used in row errors.
func LoadPathsNamed(source string, r io.Reader, sink PathSink, opts ...Option) (*Report, error) {
	rep := &Report{}
	err := scan(source, r, []string{ColFrom, ColTo, ColWeight}, options(opts), rep,
		func(row []string) error {
			w, err := campus.ParseWeight(row[2])
			if err != nil {
				return err
			}
			if err = sink.AddPath(row[0], row[1], w); err != nil {
				return err
			}
			rep.Paths++

			return nil
		})

	return rep, err
}

// Sink accepts both kinds of rows; *campus.Map satisfies it.
type Sink interface {
	LocationSink
	PathSink
}

// LoadFiles loads the locations file and then the paths file into sink.
// The returned Report covers both files.
func LoadFiles(locationsPath, pathsPath string, sink Sink, opts ...Option) (*Report, error) {
	total := &Report{}

	rep, err := loadFile(locationsPath, func(f io.Reader) (*Report, error) {
		return LoadLocationsNamed(locationsPath, f, sink, opts...)
	})
	total.merge(rep)
	if err != nil {
		return total, err
	}

	rep, err = loadFile(pathsPath, func(f io.Reader) (*Report, error) {
		return LoadPathsNamed(pathsPath, f, sink, opts...)
	})
	total.merge(rep)

	return total, err
}

func loadFile(path string, load func(io.Reader) (*Report, error)) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return load(f)
}

func options(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// scan reads the header, resolves the wanted columns and calls apply with
// the trimmed cells of each data row in the order of want.
//
// Malformed CSV stops the scan regardless of Strict; rejected rows only
// stop it when Strict is set.
func scan(source string, r io.Reader, want []string, o Options, rep *Report, apply func([]string) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s is empty", ErrMissingColumn, source)
	}
	if err != nil {
		return fmt.Errorf("loader: %s header: %w", source, err)
	}
	idx, err := columns(header, want)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	cells := make([]string, len(want))
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("loader: %s: %w", source, err)
		}
		line, _ := cr.FieldPos(0)

		rowErr := func() error {
			for i, col := range idx {
				if col >= len(rec) {
					return fmt.Errorf("%w: row has %d fields, %q needs field %d",
						campus.ErrInvalidInput, len(rec), want[i], col+1)
				}
				cells[i] = strings.TrimSpace(rec[col])
			}

			return apply(cells)
		}()
		if rowErr == nil {
			continue
		}

		re := &RowError{Source: source, Line: line, Err: rowErr}
		if o.Strict {
			return re
		}
		rep.skip(re)
		o.Logger.Warn("row skipped", zap.String("source", source), zap.Int("line", line), zap.Error(rowErr))
	}

	o.Logger.Info("source loaded",
		zap.String("source", source),
		zap.Int("locations", rep.Locations),
		zap.Int("paths", rep.Paths),
		zap.Int("skipped", rep.Skipped))

	return nil
}

// columns maps each wanted name to its index in header.
func columns(header, want []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		h = strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	out := make([]int, len(want))
	for i, w := range want {
		p, ok := pos[w]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, w)
		}
		out[i] = p
	}

	return out, nil
}
