package handler

import (
	"strconv"

	"selmag/manager-app/internal/app/manager/infrastructure"
	"selmag/pkg/auth"

	"github.com/gin-gonic/gin"
)

func caller(c *gin.Context) (auth.Principal, bool) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		_ = c.Error(auth.ErrUnauthorized)
		return auth.Principal{}, false
	}
	return principal, true
}

// productID разбирает :productId; нечисловой id - такого товара нет
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		_ = c.Error(infrastructure.ErrProductNotFound)
		return 0, false
	}
	return id, true
}

func productPath(id int) string {
	return "/catalogue/products/" + strconv.Itoa(id)
}
