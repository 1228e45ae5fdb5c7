package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorKind classifies a validation or submission failure.
type ErrorKind string

const (
	KindMissingField      ErrorKind = "MissingField"
	KindTooShort          ErrorKind = "TooShort"
	KindInvalidEnum       ErrorKind = "InvalidEnum"
	KindInvalidDate       ErrorKind = "InvalidDate"
	KindDuplicateDate     ErrorKind = "DuplicateDate"
	KindNegativeValue     ErrorKind = "NegativeValue"
	KindInvalidMediaURL   ErrorKind = "InvalidMediaURL"
	KindOutOfRange        ErrorKind = "OutOfRange"
	KindInvalidValue      ErrorKind = "InvalidValue"
	KindMediaUploadFailed ErrorKind = "MediaUploadFailed"
	KindNotFound          ErrorKind = "NotFound"
	KindUnauthorized      ErrorKind = "Unauthorized"
	KindTimedOut          ErrorKind = "TimedOut"
	KindNetworkError      ErrorKind = "NetworkError"
)

// FieldError is one field-addressable validation failure.
type FieldError struct {
	Field   string    `json:"field"`
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors collects every failure from one validation pass.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Missing builds a MissingField error for fields detected absent
// before struct validation runs (e.g. an empty multipart value that
// must parse into a number or date).
func Missing(field string) FieldError {
	return FieldError{Field: field, Kind: KindMissingField, Message: field + " is required"}
}

// Invalid builds a FieldError for parse-stage failures.
func Invalid(field string, kind ErrorKind, message string) FieldError {
	return FieldError{Field: field, Kind: kind, Message: message}
}

func translate(fe validator.FieldError) FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return FieldError{Field: field, Kind: KindMissingField, Message: field + " is required"}
	case "min":
		if fe.Kind() == reflect.String {
			return FieldError{
				Field:   field,
				Kind:    KindTooShort,
				Message: fmt.Sprintf("%s must be at least %s characters long", field, fe.Param()),
			}
		}
		return FieldError{Field: field, Kind: KindNegativeValue, Message: field + " cannot be negative"}
	case "gte":
		return FieldError{Field: field, Kind: KindNegativeValue, Message: field + " cannot be negative"}
	case "oneof":
		return FieldError{
			Field:   field,
			Kind:    KindInvalidEnum,
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", ")),
		}
	case "pastdate":
		return FieldError{Field: field, Kind: KindInvalidDate, Message: field + " must not be in the future"}
	case "videourl":
		return FieldError{
			Field:   field,
			Kind:    KindInvalidMediaURL,
			Message: fmt.Sprintf("%s is not a valid video URL: %v", field, fe.Value()),
		}
	case "imageurl":
		return FieldError{
			Field:   field,
			Kind:    KindInvalidMediaURL,
			Message: fmt.Sprintf("%s is not a valid image URL: %v", field, fe.Value()),
		}
	case "coverpath":
		return FieldError{
			Field:   field,
			Kind:    KindInvalidMediaURL,
			Message: fmt.Sprintf("%s must start with http or /uploads/: %v", field, fe.Value()),
		}
	case "latitude":
		return FieldError{Field: field, Kind: KindOutOfRange, Message: field + " must be between -90 and 90"}
	case "longitude":
		return FieldError{Field: field, Kind: KindOutOfRange, Message: field + " must be between -180 and 180"}
	default:
		return FieldError{
			Field:   field,
			Kind:    KindInvalidValue,
			Message: fmt.Sprintf("%s failed validation on %s", field, fe.Tag()),
		}
	}
}
