package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Fields.
var v = validator.New()

// messages maps validation tags to the client-facing message for a field.
var messages = map[string]string{
	"required": "Must not be empty",
	"notblank": "Must not be empty",
	"email":    "Must be a valid email address",
	"eqfield":  "Passwords must match",
}

func init() {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// Report fields by their JSON names so error maps line up with request bodies.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Fields validates s and returns every failing field mapped to a message.
// The map is empty when s is valid.
func Fields(s interface{}) map[string]string {
	errs := map[string]string{}
	err := v.Struct(s)
	if err == nil {
		return errs
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["general"] = err.Error()
		return errs
	}
	for _, fe := range ve {
		msg, known := messages[fe.Tag()]
		if !known {
			msg = "Is invalid"
		}
		errs[fe.Field()] = msg
	}
	return errs
}
