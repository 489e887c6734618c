package problem

import (
	"errors"
	"net/http"

	"selmag/pkg/auth"
	"selmag/pkg/validation"
	"selmag/pkg/webclient"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Middleware превращает последнюю ошибку обработчика (c.Error) в problem-ответ.
// Обработчики не формируют тела ошибок сами.
func Middleware(messages *Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		Write(c, Translate(c.Errors.Last().Err, messages, c.GetHeader("Accept-Language")))
	}
}

// Translate сопоставляет ошибку со статусом и локализованным описанием
func Translate(err error, messages *Messages, lang string) Problem {
	var (
		fieldErrors validator.ValidationErrors
		notFound    *NotFoundError
		malformed   *MalformedPayloadError
		badRequest  *webclient.BadRequestError
	)

	switch {
	case errors.As(err, &fieldErrors):
		errs := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			key := validation.MessageKey(fe)
			text := messages.Lookup(key, lang)
			if text == key {
				text = fe.Error()
			}
			errs = append(errs, text)
		}
		return New(http.StatusBadRequest, messages.Lookup(KeyValidation, lang)).WithErrors(errs)

	case errors.As(err, &malformed):
		detail := messages.Lookup(KeyMalformedPayload, lang)
		return New(http.StatusBadRequest, detail).WithErrors([]string{detail})

	case errors.As(err, &badRequest):
		return New(http.StatusBadRequest, messages.Lookup(KeyValidation, lang)).WithErrors(badRequest.Errors)

	case errors.As(err, &notFound):
		return New(http.StatusNotFound, messages.Lookup(notFound.Key, lang))

	case errors.Is(err, auth.ErrUnauthorized):
		return New(http.StatusUnauthorized, messages.Lookup(KeyUnauthorized, lang))

	case errors.Is(err, auth.ErrForbidden):
		return New(http.StatusForbidden, messages.Lookup(KeyForbidden, lang))
	}

	return New(http.StatusInternalServerError, messages.Lookup(KeyInternal, lang))
}
