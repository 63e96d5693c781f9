package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ConfigValidator provides a fluent interface for cross-field validation.
// It collects all validation errors rather than failing on the first one.
type ConfigValidator struct {
	errors []error
	name   string // config struct name for error messages
}

// NewConfigValidator creates a new config validator with the given config name.
func NewConfigValidator(configName string) *ConfigValidator {
	return &ConfigValidator{
		name:   configName,
		errors: make([]error, 0),
	}
}

// Required validates that a string field is not empty.
func (cv *ConfigValidator) Required(field, value string) *ConfigValidator {
	if value == "" {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: required field is empty", cv.name, field))
	}
	return cv
}

// NonEmptyList validates that a list field has at least one element.
func (cv *ConfigValidator) NonEmptyList(field string, length int) *ConfigValidator {
	if length == 0 {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: at least one element required", cv.name, field))
	}
	return cv
}

// WordFormat validates that a word matches the given pattern.
func (cv *ConfigValidator) WordFormat(field, word string, pattern *regexp.Regexp) *ConfigValidator {
	if !pattern.MatchString(word) {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: word %q does not match %s", cv.name, field, word, pattern))
	}
	return cv
}

// MinInt validates that an int field is at least the minimum value.
func (cv *ConfigValidator) MinInt(field string, value, min int) *ConfigValidator {
	if value < min {
		cv.errors = append(cv.errors, fmt.Errorf("%s.%s: value %d is below minimum %d", cv.name, field, value, min))
	}
	return cv
}

// HasErrors reports whether any check has failed so far.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errors) > 0
}

// Validate returns the collected errors, or nil if all checks passed.
func (cv *ConfigValidator) Validate() error {
	if len(cv.errors) == 0 {
		return nil
	}
	msgs := make([]string, len(cv.errors))
	for i, err := range cv.errors {
		msgs[i] = err.Error()
	}
	return errors.New(strings.Join(msgs, "; "))
}
