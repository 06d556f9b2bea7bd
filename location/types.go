// SPDX-License-Identifier: MIT

package location

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for registry operations.
var (
	// ErrLocationExists indicates an Add for a name already present.
	ErrLocationExists = errors.New("location: already exists")

	// ErrLocationNotFound indicates an operation referenced an unknown name.
	ErrLocationNotFound = errors.New("location: not found")

	// ErrInvalidLocation indicates a record failed field validation.
	ErrInvalidLocation = errors.New("location: invalid")
)

// Location is one named place on campus.
type Location struct {
	// Name uniquely identifies the location.
	Name string `validate:"notblank"`

	// Type classifies the location, e.g. "Academic" or "Dining".
	Type string `validate:"notblank"`

	// VisitTime is the suggested visit duration in minutes.
	VisitTime int `validate:"min=0"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Validate checks the record's fields and reports every violation at once,
// wrapped in ErrInvalidLocation.
func (l Location) Validate() error {
	err := validate.Struct(l)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidLocation, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "notblank":
		return fmt.Sprintf("%s must not be empty", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
