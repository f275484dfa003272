package serializer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NonFieldErrors is the key used for errors that are not tied to one field.
const NonFieldErrors = "non_field_errors"

// Violation messages, worded the way API clients already expect them.
const (
	MsgRequired       = "This field is required."
	MsgBlank          = "This field may not be blank."
	MsgNull           = "This field may not be null."
	MsgInvalidString  = "Not a valid string."
	MsgInvalidInteger = "A valid integer is required."
	MsgMinValue1      = "Ensure this value is greater than or equal to 1."
	MsgInvalidEmail   = "Enter a valid email address."
	MsgInvalidDate    = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	MsgInvalidNumber  = "A valid number is required."
)

func MsgMaxLength(n int) string {
	return fmt.Sprintf("Ensure this field has no more than %d characters.", n)
}

func MsgMaxDigits(n int) string {
	return fmt.Sprintf("Ensure that there are no more than %d digits in total.", n)
}

func MsgMaxDecimalPlaces(n int) string {
	return fmt.Sprintf("Ensure that there are no more than %d decimal places.", n)
}

func MsgMaxWholeDigits(n int) string {
	return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", n)
}

func MsgPKDoesNotExist(pk int64) string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", pk)
}

func MsgPKIncorrectType(typeName string) string {
	return fmt.Sprintf("Incorrect type. Expected pk value, received %s.", typeName)
}

// FieldErrors maps a field name to its human readable violations.
// A non-empty FieldErrors is the validation failure result; there is no partial success.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// OrNil returns nil when there is nothing to report.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Merge folds ozzo validation errors into e. Fields that already carry an
// error keep it and the rule error is dropped. Anything that is not a
// validation.Errors is returned unchanged.
func (e FieldErrors) Merge(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return err
	}

	for field, ferr := range verrs {
		if ferr == nil || e.Has(field) {
			continue
		}
		e.Add(field, ferr.Error())
	}
	return nil
}

// AsFieldErrors reports whether err is (or wraps) a FieldErrors.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// ParseError means the request body itself could not be read.
type ParseError struct {
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse error - %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
