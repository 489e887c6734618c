package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New создаёт валидатор для входящих payload.
// Поля в ошибках называются по json-тегам, чтобы ключи сообщений совпадали с API.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		}
		return name
	})

	return v
}

// MessageKey возвращает ключ локализованного сообщения для ошибки поля:
// <Тип>.<поле>.<тег>, например NewProductPayload.title.notblank
func MessageKey(fe validator.FieldError) string {
	return fe.Namespace() + "." + fe.Tag()
}
