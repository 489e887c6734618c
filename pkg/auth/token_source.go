package auth

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoToken = errors.New("caller has no access token")

// TokenSource выдаёт bearer токен для исходящего запроса от имени вызывающего
type TokenSource interface {
	Token(ctx context.Context, caller Principal) (string, error)
}

// RelayTokenSource пробрасывает токен самого вызывающего
type RelayTokenSource struct{}

func (RelayTokenSource) Token(_ context.Context, caller Principal) (string, error) {
	if caller.Token == "" {
		return "", ErrNoToken
	}
	return caller.Token, nil
}

// IssuingTokenSource выпускает токен приложения-клиента с фиксированным набором scope.
// Subject токена - вызывающий пользователь, azp - идентификатор клиента.
type IssuingTokenSource struct {
	jwt      *JWTManager
	clientID string
	scopes   []string
}

func NewIssuingTokenSource(jwt *JWTManager, clientID string, scopes []string) *IssuingTokenSource {
	return &IssuingTokenSource{
		jwt:      jwt,
		clientID: clientID,
		scopes:   scopes,
	}
}

func (s *IssuingTokenSource) Token(_ context.Context, caller Principal) (string, error) {
	subject := caller.Subject
	if subject == "" {
		subject = s.clientID
	}

	token, err := s.jwt.GenerateToken(subject, s.clientID, s.scopes, nil)
	if err != nil {
		return "", fmt.Errorf("failed to issue client token: %w", err)
	}
	return token, nil
}
