package checkout

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRe      = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	postalCodeRe = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// NewValidator возвращает валидатор с правилами формы оформления заказа.
// Имена полей в ошибках берутся из json тегов.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "postal_code", func(fl validator.FieldLevel) bool {
		return postalCodeRe.MatchString(fl.Field().String())
	})
	mustRegister(v, "shipping_option", func(fl validator.FieldLevel) bool {
		_, err := ParseShippingOption(fl.Field().String())
		return err == nil
	})

	return v
}

// mustRegister ошибка регистрации означает опечатку в коде, а не во входных данных
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("failed to register validation %q: %v", tag, err))
	}
}
