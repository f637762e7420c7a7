package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	registerJSONTagNames(v)
	return v
}

// Validator returns the shared validator used for portal forms that are checked
// before anything is sent upstream.
func Validator() *validator.Validate {
	return validate
}

func Init() {
	// gin's binding validator reports json names too
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerJSONTagNames(v)
	}
}

func registerJSONTagNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
