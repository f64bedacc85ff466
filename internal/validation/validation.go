// Package validation schema-checks inbound request payloads. All field
// errors are collected and joined into a single message rather than
// stopping at the first failure.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Error carries the joined field messages for a failed payload.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Struct validates s against its struct tags. On failure it returns an
// *Error whose message lists every invalid field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Error{Message: "invalid payload"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Field()+" "+fieldMessage(fe))
	}
	return &Error{Message: strings.Join(msgs, ", ")}
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + strings.Join(splitOneOf(param), ", ")
	case "datetime":
		return "must be a date in format " + param
	default:
		if param != "" {
			return fmt.Sprintf("failed validation '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("failed validation '%s'", fe.Tag())
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// splitOneOf splits a oneof parameter, honoring single-quoted values
// that contain spaces ("Specialist Registrar", "ASA I", ...).
func splitOneOf(param string) []string {
	var out []string
	fields := strings.Fields(param)
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if strings.HasPrefix(f, "'") && !strings.HasSuffix(f, "'") {
			for i+1 < len(fields) {
				i++
				f += " " + fields[i]
				if strings.HasSuffix(fields[i], "'") {
					break
				}
			}
		}
		out = append(out, strings.Trim(f, "'"))
	}
	return out
}
