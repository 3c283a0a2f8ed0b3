package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// New создает валидатор с дополнительными правилами каталога меню.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}
