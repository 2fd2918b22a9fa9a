package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	if err := Validator.RegisterValidation("notblank", notBlank); err != nil {
		panic(err)
	}

	optsGenValidator.Set(Validator)
}

// notBlank fails on strings that are empty after strings.TrimSpace.
// Other kinds must have a value.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Chan, reflect.Map, reflect.Slice, reflect.Array:
		return field.Len() > 0
	case reflect.Ptr, reflect.Interface, reflect.Func:
		return !field.IsNil()
	default:
		return field.IsValid() && !field.IsZero()
	}
}
