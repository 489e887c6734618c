package problem

import "errors"

// NotFoundError - искомый ресурс отсутствует.
// Key одновременно служит ключом локализованного сообщения.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return e.Key
}

func NotFound(key string) error {
	return &NotFoundError{Key: key}
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// MalformedPayloadError - тело запроса не удалось разобрать
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	return "malformed request payload: " + e.Err.Error()
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func MalformedPayload(err error) error {
	return &MalformedPayloadError{Err: err}
}
