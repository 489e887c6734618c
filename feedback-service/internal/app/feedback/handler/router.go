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

const ServiceName = "feedback-service"

func SetupRoutes(
	reviewsHandler *ProductReviewsHandler,
	favouritesHandler *FavouriteProductsHandler,
	authMiddleware *auth.Middleware,
	messages *problem.Messages,
) *gin.Engine {
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
		_ = c.Error(problem.NotFound(KeyNotFound))
	})

	// доступ для любого аутентифицированного пользователя
	api := router.Group("/feedback-api")
	api.Use(authMiddleware.Authenticate())
	{
		reviews := api.Group("/product-reviews")
		reviews.GET("/by-product-id/:productId", reviewsHandler.FindProductReviewsByProductID)
		reviews.POST("", reviewsHandler.CreateProductReview)

		favourites := api.Group("/favourite-products")
		favourites.GET("", favouritesHandler.FindFavouriteProducts)
		favourites.GET("/by-product-id/:productId", favouritesHandler.FindFavouriteProductByProductID)
		favourites.POST("", favouritesHandler.AddProductToFavourites)
		favourites.DELETE("/by-product-id/:productId", favouritesHandler.RemoveProductFromFavourites)
	}

	return router
}
