// SPDX-License-Identifier: MIT

package campus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// ParseWeight converts user or file text into a path weight, an integer in
// [core.MinWeight, core.MaxWeight].
func ParseWeight(s string) (int64, error) {
	w, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: weight %q is not an integer", ErrInvalidInput, s)
	}
	if w < core.MinWeight || w > core.MaxWeight {
		return 0, fmt.Errorf("%w: weight %d is outside %d..%d", ErrInvalidInput, w, core.MinWeight, core.MaxWeight)
	}

	return w, nil
}

// ParseVisitTime converts user or file text into a visit time (integer ≥ 0).
func ParseVisitTime(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: visit time %q is not an integer", ErrInvalidInput, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: visit time %d is negative", ErrInvalidInput, v)
	}

	return v, nil
}
