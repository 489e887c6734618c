package problem

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ContentType = "application/problem+json"

// Problem - тело ответа при любой ошибке REST API
type Problem struct {
	Status   int      `json:"status"`
	Title    string   `json:"title"`
	Detail   string   `json:"detail,omitempty"`
	Instance string   `json:"instance,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

func New(status int, detail string) Problem {
	return Problem{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
	}
}

func (p Problem) WithErrors(errors []string) Problem {
	p.Errors = errors
	return p
}

// Write отправляет problem. Content-Type выставляется заранее: gin не перезаписывает заданный заголовок.
func Write(c *gin.Context, p Problem) {
	if p.Instance == "" {
		p.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentType)
	c.JSON(p.Status, p)
}
