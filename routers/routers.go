package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/cart"
	"storefront/checkout"
	"storefront/config"
	"storefront/handlers"
	"storefront/middleware"
	"storefront/repository"
)

func SetupRouters(cfg config.Config, db *gorm.DB, orderRepo repository.OrderRepository, cartStore *cart.Store, checkoutSvc *checkout.Service) *gin.Engine {
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Next()
	})
	// Cannot fail with a nil CIDR list.
	_ = router.SetTrustedProxies(nil)

	// Uploaded product images are served as static files.
	router.Static("/uploads", cfg.Server.UploadsDir)

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.Use(middleware.Auth(cfg.Auth.Secret))
	{
		router.POST("/api/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, db)
		})
		router.POST("/api/login", func(c *gin.Context) {
			handlers.LoginHandler(c, db, cfg.Auth.Secret)
		})
		router.GET("/api/products", func(c *gin.Context) {
			handlers.ListProductsHandler(c, db)
		})

		loginRequired := router.Group("/api")
		loginRequired.Use(middleware.RequireLogin())
		{
			loginRequired.GET("/cart", func(c *gin.Context) {
				handlers.GetCartHandler(c, cartStore)
			})
			loginRequired.POST("/cart", func(c *gin.Context) {
				handlers.AddToCartHandler(c, cartStore)
			})
			loginRequired.DELETE("/cart/:id", func(c *gin.Context) {
				handlers.RemoveFromCartHandler(c, cartStore)
			})
			loginRequired.DELETE("/cart", func(c *gin.Context) {
				handlers.ClearCartHandler(c, cartStore)
			})
			loginRequired.GET("/orders", func(c *gin.Context) {
				handlers.ListOrdersHandler(c, orderRepo)
			})
			loginRequired.POST("/create-checkout-session", func(c *gin.Context) {
				handlers.CreateCheckoutSessionHandler(c, db, checkoutSvc)
			})
		}

		adminRequired := router.Group("/api")
		adminRequired.Use(middleware.RequireLogin(), middleware.RequireAdmin())
		{
			adminRequired.POST("/products", func(c *gin.Context) {
				handlers.CreateProductHandler(c, db, cfg.Server.UploadsDir, cfg.Server.SiteURL)
			})
			adminRequired.PUT("/products/:id", func(c *gin.Context) {
				handlers.UpdateProductHandler(c, db, cfg.Server.UploadsDir, cfg.Server.SiteURL)
			})
			adminRequired.DELETE("/products/:id", func(c *gin.Context) {
				handlers.DeleteProductHandler(c, db)
			})
		}
	}

	return router
}
