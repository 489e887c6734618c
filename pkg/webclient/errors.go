package webclient

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound - удалённый ресурс отсутствует (ответ 404)
var ErrNotFound = errors.New("remote resource not found")

// BadRequestError - соседний сервис отклонил запрос (400).
// Errors содержит список ошибок из problem-ответа без изменений.
type BadRequestError struct {
	Errors []string
}

func (e *BadRequestError) Error() string {
	if len(e.Errors) == 0 {
		return "bad request"
	}
	return "bad request: " + strings.Join(e.Errors, "; ")
}

// StatusError - любой другой неуспешный ответ
type StatusError struct {
	Peer       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Peer, e.StatusCode)
}

// AsBadRequest возвращает BadRequestError из цепочки ошибок
func AsBadRequest(err error) (*BadRequestError, bool) {
	var badRequest *BadRequestError
	if errors.As(err, &badRequest) {
		return badRequest, true
	}
	return nil, false
}
