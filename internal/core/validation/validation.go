// Package validation carries the field-level validation error type mutation
// services return. Required-field checks use ozzo-validation; free-form JSON
// documents (ad creatives) are checked against a JSON Schema. Both funnel
// into ValidationErrors so handlers map them to one 400 shape.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/xeipuuv/gojsonschema"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

// FromOzzo converts an ozzo-validation error into ValidationErrors. Any other
// error passes through unchanged.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}

	var ozzoErrs ozzo.Errors
	if !errors.As(err, &ozzoErrs) {
		return err
	}

	fields := make([]string, 0, len(ozzoErrs))
	for field := range ozzoErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	ve := &ValidationErrors{}
	for _, field := range fields {
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: ozzoErrs[field].Error()})
	}
	return ve
}

// FromSchemaResult converts a failed JSON Schema validation into
// ValidationErrors. A valid result yields nil.
func FromSchemaResult(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	ve := &ValidationErrors{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
	}
	return ve
}

func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

func GetValidationErrors(err error) *ValidationErrors {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
