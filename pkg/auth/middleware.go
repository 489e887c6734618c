package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
)

// TokenCookie - cookie с access токеном для браузерных страниц
const TokenCookie = "access_token"

// Middleware проверяет bearer токены и права вызывающего.
// Ошибки кладутся в c.Errors, ответ формирует обработчик ошибок сервиса.
type Middleware struct {
	jwt *JWTManager
}

func NewMiddleware(jwt *JWTManager) *Middleware {
	return &Middleware{jwt: jwt}
}

// Authenticate извлекает токен из Authorization: Bearer (или cookie) и сохраняет Principal
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}

		claims, err := m.jwt.ValidateToken(tokenString)
		if err != nil {
			abort(c, http.StatusUnauthorized, errors.Join(ErrUnauthorized, err))
			return
		}

		WithPrincipal(c, Principal{
			Subject: claims.Subject,
			Scopes:  claims.Scopes(),
			Roles:   claims.Roles,
			Token:   tokenString,
		})
		c.Next()
	}
}

// RequireScope пропускает только токены с указанным scope
func (m *Middleware) RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}
		if !principal.HasScope(scope) {
			abort(c, http.StatusForbidden, ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireRole пропускает пользователей хотя бы с одной из ролей
func (m *Middleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			abort(c, http.StatusUnauthorized, ErrUnauthorized)
			return
		}
		if !principal.HasAnyRole(roles...) {
			abort(c, http.StatusForbidden, ErrForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.Abort()
	// заголовки не отправляются: тело ответа дописывает обработчик ошибок
	c.Status(status)
}
