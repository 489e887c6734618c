package handler

import (
	"net/http"

	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/metrics"
	"selmag/pkg/problem"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServiceName = "catalogue-service"

	ScopeViewCatalogue = "view_catalogue"
	ScopeEditCatalogue = "edit_catalogue"
)

func SetupRoutes(productHandler *ProductHandler, authMiddleware *auth.Middleware, messages *problem.Messages) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(ServiceName))
	router.Use(problem.Middleware(messages))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": ServiceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(problem.NotFound("errors.not_found"))
	})

	products := router.Group("/catalogue-api/products")
	products.Use(authMiddleware.Authenticate())
	{
		view := authMiddleware.RequireScope(ScopeViewCatalogue)
		edit := authMiddleware.RequireScope(ScopeEditCatalogue)

		products.GET("", view, productHandler.FindProducts)
		products.POST("", edit, productHandler.CreateProduct)
		products.GET("/:productId", view, productHandler.FindProduct)
		products.PATCH("/:productId", edit, productHandler.UpdateProduct)
		products.DELETE("/:productId", edit, productHandler.DeleteProduct)
	}

	return router
}
