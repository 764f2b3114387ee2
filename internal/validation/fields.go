package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"vibestudio/internal/models"
)

// Fields accumulates per-field problems of a submitted form.
type Fields struct {
	problems []string
}

// MinLength records a problem when value has fewer than n characters.
func (f *Fields) MinLength(field, value string, n int, message string) {
	if utf8.RuneCountInString(value) < n {
		f.add(field, message)
	}
}

// Required records a problem when value is blank.
func (f *Fields) Required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		f.add(field, message)
	}
}

// NonEmpty records a problem when no option was selected.
func (f *Fields) NonEmpty(field string, values []string, message string) {
	if len(values) == 0 {
		f.add(field, message)
	}
}

func (f *Fields) add(field, message string) {
	f.problems = append(f.problems, fmt.Sprintf("%s: %s", field, message))
}

// Err returns a validation AppError listing every problem, or nil.
func (f *Fields) Err() error {
	if len(f.problems) == 0 {
		return nil
	}
	return models.NewValidationError(strings.Join(f.problems, "; "))
}
