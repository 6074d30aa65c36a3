package common

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// SlugRX matches lowercase alphanumeric tokens separated by single hyphens,
// e.g. "hello-world-2024". Leading, trailing, and doubled hyphens are rejected.
var SlugRX = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type ValidationError struct {
	Errors map[string]string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation errors: %+v", e.Errors)
}

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

func (v *Validator) AddError(field, message string) {
	if _, ok := v.Errors[field]; !ok {
		v.Errors[field] = message
	}
}

func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// CheckMaxChars counts characters rather than bytes so that multi-byte input
// is not over-counted.
func (v *Validator) CheckMaxChars(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}

func (v *Validator) Matches(s string, rx *regexp.Regexp) bool {
	return rx.MatchString(s)
}

func (v *Validator) ValidationError() error {
	return ValidationError{Errors: v.Errors}
}
