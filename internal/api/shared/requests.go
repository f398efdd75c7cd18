package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse. Field names are reported by their
// JSON names so that error keys match the request payload.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidateValue validates a single value, such as a query parameter, against
// the given validator tag.
func ValidateValue(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// FieldErrors converts a validation error into a map of field path to message.
// The path omits the root struct name, so a nested field is keyed like
// "accountsDto.accountNumber". field is used as the key when the error comes
// from ValidateValue. Messages are looked up in messages as "<field>.<tag>".
func FieldErrors(err error, field string, messages map[string]string) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			out[field] = err.Error()
		}
		return out
	}

	for _, fe := range verrs {
		key := field
		if ns := fe.Namespace(); ns != "" {
			if _, rest, ok := strings.Cut(ns, "."); ok {
				key = rest
			} else {
				key = ns
			}
		}

		name := fe.Field()
		if name == "" {
			name = field
		}

		msg, ok := messages[name+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s failed on the '%s' validation", name, fe.Tag())
		}
		if _, exists := out[key]; !exists {
			out[key] = msg
		}
	}
	return out
}
