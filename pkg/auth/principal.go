package auth

import (
	"slices"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// Principal - аутентифицированный вызывающий.
// Передаётся явно в сервисы и исходящие клиенты вместо неявного контекста безопасности.
type Principal struct {
	Subject string
	Scopes  []string
	Roles   []string
	Token   string
}

func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if slices.Contains(p.Roles, role) {
			return true
		}
	}
	return false
}

// PrincipalFrom достаёт вызывающего, сохранённого Authenticate
func PrincipalFrom(c *gin.Context) (Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

// WithPrincipal кладёт вызывающего в контекст gin; используется middleware и тестами
func WithPrincipal(c *gin.Context, principal Principal) {
	c.Set(principalKey, principal)
}
