// internal/router/router.go
package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/saree-sanctuary/internal/config"
	"github.com/javajoker/saree-sanctuary/internal/handlers"
	"github.com/javajoker/saree-sanctuary/internal/middleware"
	"github.com/javajoker/saree-sanctuary/internal/services"
	"github.com/javajoker/saree-sanctuary/internal/stitch"
	"github.com/javajoker/saree-sanctuary/internal/store"
)

// Initialize wires services and handlers over s. Background work started here (rate
// limiter cleanup) stops when ctx is done.
func Initialize(ctx context.Context, s *store.Store, cfg *config.Config, log logrus.FieldLogger) *gin.Engine {
	// Initialize services
	stitcher := stitch.New(s, stitch.DefaultRegistry())
	referenceService := services.NewReferenceService(s, cfg.References.Enforce)

	productService := services.NewProductService(s, stitcher, referenceService, log)
	vendorService := services.NewVendorService(s, stitcher, log)
	reviewService := services.NewReviewService(s, referenceService, log)
	orderService := services.NewOrderService(s, referenceService, log)
	categoryService := services.NewCategoryService(s)
	systemService := services.NewSystemService(s, cfg.Database, log)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	vendorHandler := handlers.NewVendorHandler(vendorService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	orderHandler := handlers.NewOrderHandler(orderService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	systemHandler := handlers.NewSystemHandler(systemService)

	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
	go limiter.Run(ctx)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": s.Available(),
		})
	})

	r.GET("/", systemHandler.Root)
	r.GET("/schema", systemHandler.Schema)
	r.GET("/test", systemHandler.Diagnostics)

	api := r.Group("/api")
	api.Use(limiter.Middleware())
	{
		api.POST("/seed", systemHandler.Seed)

		// Product routes
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:slug", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
		}

		// Vendor routes
		vendors := api.Group("/vendors")
		{
			vendors.GET("", vendorHandler.GetVendors)
			vendors.GET("/:slug", vendorHandler.GetVendor)
			vendors.POST("", vendorHandler.CreateVendor)
		}

		// Review routes
		reviews := api.Group("/reviews")
		{
			reviews.GET("/:product_slug", reviewHandler.GetReviews)
			reviews.POST("", reviewHandler.CreateReview)
		}

		api.POST("/orders", orderHandler.CreateOrder)
		api.GET("/categories", categoryHandler.GetCategories)
	}

	return r
}
