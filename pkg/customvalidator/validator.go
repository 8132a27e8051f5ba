// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует кастомные правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		return err
	}
	return nil
}

// New - валидатор с уже зарегистрированными правилами. Паникует, если правило не встало:
// без него формы принимали бы пустые поля.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}
	return v
}

// isNotBlank - строка непустая после обрезки пробелов.
func isNotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Ptr:
		if field.IsNil() {
			return false
		}
		return strings.TrimSpace(field.Elem().String()) != ""
	default:
		return !field.IsZero()
	}
}
