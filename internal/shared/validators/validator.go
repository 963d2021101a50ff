package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance.
func New() *Validate {
	return validator.New()
}

// Describe formats validation errors as "field (tag)" items joined by ", ", e.g.
// "server.port (max=65535), log.level (oneof=trace debug info warn error fatal panic disabled)".
// Any other error is returned as its message.
func Describe(err error) string {
	var validationErrors ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	items := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		items = append(items, describeField(e))
	}
	return strings.Join(items, ", ")
}

// describeField formats a single validation error into a readable string.
func describeField(e FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path without the root struct name (e.g. "Config.Server.Port" -> "server.port")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "min", "max", "oneof", "gte", "lte":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
