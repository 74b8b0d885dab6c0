package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: NewValidate()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}

// NewValidate returns a validator instance that reports fields by their JSON
// names, so error messages match the wire format.
func NewValidate() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Messages turns a validation error into the full ordered list of violated
// rules; evaluation is not fail-fast, so every missing field is reported.
func Messages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{"invalid request body"}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "email":
			msgs = append(msgs, fmt.Sprintf("Please provide a valid email address for %q", fe.Field()))
		case "min", "max":
			msgs = append(msgs, fmt.Sprintf("Please provide a value for %q that is between 8 and 20 characters in length", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("Please provide a value for %q", fe.Field()))
		}
	}
	return msgs
}
