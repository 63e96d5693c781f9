// Package validation checks externally supplied generation requests
// before they reach the core. Struct-level rules are expressed with
// validator tags; cross-field rules are collected by ConfigValidator.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Words are lowercase ASCII letters; atomic inputs are single characters.
	wordPattern = regexp.MustCompile(`^[a-z]+$`)
)

func init() {
	validate = validator.New()
}

// Scenario describes one generation request, typically loaded from a YAML
// file by the command-line runner.
type Scenario struct {
	Algorithm     string   `yaml:"algorithm" validate:"required,oneof=linear component bio-inspired product-team late-differentiation"`
	Outputs       []string `yaml:"outputs" validate:"required,min=1,dive,min=1"`
	StandardWords []string `yaml:"standard_words" validate:"omitempty,dive,min=2"`
	LogLevel      string   `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ValidateScenario validates a scenario loaded from external input.
func ValidateScenario(s *Scenario) error {
	if s == nil {
		return errors.New("scenario cannot be nil")
	}

	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}

	cv := NewConfigValidator("Scenario")
	for _, w := range s.Outputs {
		cv.WordFormat("outputs", w, wordPattern)
	}
	for _, w := range s.StandardWords {
		cv.WordFormat("standard_words", w, wordPattern)
	}
	if s.Algorithm == "late-differentiation" {
		cv.NonEmptyList("standard_words", len(s.StandardWords))
	}
	return cv.Validate()
}

// formatValidationError converts validator errors into plain messages
// naming the offending field.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: required field is missing", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: below minimum length %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
