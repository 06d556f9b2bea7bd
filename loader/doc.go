// SPDX-License-Identifier: MIT

// Package loader populates a campus from two CSV sources.
//
// The locations source has the header columns name, type and weight (the
// weight column is the visit time in minutes). The paths source has node,
// node.1 and weight. Column order is free, extra columns are ignored and
// header names are matched case-insensitively after trimming. A UTF-8 byte
// order mark on the first header cell is tolerated.
//
// Rows are applied in file order through the campus operations, so every
// row obeys the same validation as an interactive edit. By default a bad
// row is skipped and recorded in the Report; WithStrict stops at the first
// one. Duplicate location names keep the first row; later ones are reported
// as already existing.
package loader
