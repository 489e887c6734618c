package problem

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Шаблоны страниц ошибок, которые должен определить сервис
const (
	NotFoundPage = "errors/404"
	ErrorPage    = "errors/error"
)

// Pages - аналог Middleware для HTML приложений: ошибка обработчика
// отображается страницей NotFoundPage (404) или ErrorPage
func Pages(messages *Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		p := Translate(c.Errors.Last().Err, messages, c.GetHeader("Accept-Language"))
		if p.Status == http.StatusNotFound {
			c.HTML(http.StatusNotFound, NotFoundPage, gin.H{"error": p.Detail})
			return
		}
		c.HTML(p.Status, ErrorPage, gin.H{
			"status": p.Status,
			"title":  p.Title,
			"error":  p.Detail,
			"errors": p.Errors,
		})
	}
}
