package handler

import (
	"fmt"
	"net/http"
	"time"

	"selmag/pkg/auth"
	"selmag/pkg/logger"
	"selmag/pkg/metrics"
	"selmag/pkg/problem"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const ServiceName = "customer-app"

func SetupRoutes(
	productsHandler *ProductsHandler,
	productHandler *ProductHandler,
	authMiddleware *auth.Middleware,
	messages *problem.Messages,
	allowedOrigins []string,
) (*gin.Engine, error) {
	pages, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(pages)

	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware(ServiceName))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))
	router.Use(problem.Pages(messages))
	router.Use(RelayAcceptLanguage())

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

	products := router.Group("/customer/products")
	products.Use(authMiddleware.Authenticate())
	{
		products.GET("/list", productsHandler.ProductsListPage)
		products.GET("/favourites", productsHandler.FavouriteProductsPage)

		products.GET("/:productId", productHandler.ProductPage)
		products.POST("/:productId/add-to-favourites", productHandler.AddToFavourites)
		products.POST("/:productId/remove-from-favourites", productHandler.RemoveFromFavourites)
		products.POST("/:productId/create-review", productHandler.CreateReview)
	}

	return router, nil
}
