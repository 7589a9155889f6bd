// Package validate evaluates the declarative validation rules carried on
// request structs (`validate:` tags) and converts failures into the same
// field→message details map the catalog API uses in its error envelopes, so
// client-side rejections and server-side 422s render identically.
package validate

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dwellhq/homecat/pkg/catalog"
)

var validate = newValidator()

// newValidator builds the shared validator. Field names in reported errors
// come from the json tag, so details keys match the wire contract exactly
// (HomeID reports as "homeId", not a munged Go name).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Struct validates a request struct against its tags. On failure it returns
// a *catalog.APIError with field-level details and a 422 status, matching
// the server's own validation envelope.
func Struct(request interface{}) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		// Non-field errors (nil pointer, unsupported type) are programmer
		// errors and propagate as-is.
		return fmt.Errorf("validating request: %w", err)
	}

	details := make(map[string]string, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		details[fieldErr.Field()] = message(fieldErr)
	}

	return &catalog.APIError{
		Status:  http.StatusUnprocessableEntity,
		Message: "validation failed",
		Details: details,
	}
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %s validation", fieldErr.Tag())
	}
}
