package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dsev/locknlock-bff/config"
	"github.com/dsev/locknlock-bff/internal/app/controller"
	"github.com/dsev/locknlock-bff/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	tagController      *controller.TagController
	cartController     *controller.CartController
	checkoutController *controller.CheckoutController
	paymentController  *controller.PaymentController
	adminController    *controller.AdminController
	sessionMiddleware  *middleware.SessionMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	categoryController *controller.CategoryController,
	tagController *controller.TagController,
	cartController *controller.CartController,
	checkoutController *controller.CheckoutController,
	paymentController *controller.PaymentController,
	adminController *controller.AdminController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		productController:  productController,
		categoryController: categoryController,
		tagController:      tagController,
		cartController:     cartController,
		checkoutController: checkoutController,
		paymentController:  paymentController,
		adminController:    adminController,
		sessionMiddleware:  sessionMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "LOCKNLOCK BFF is running",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.sessionMiddleware.OptionalSession(), r.authController.Logout)
			auth.GET("/me", r.sessionMiddleware.RequireSession(), r.authController.Me)
		}

		products := api.Group("/products")
		{
			products.GET("/active", r.productController.GetActiveProducts)
			products.GET("/search", r.productController.SearchProducts)
			products.GET("/category/:id", r.productController.GetProductsByCategory)
			products.GET("/tag/:id", r.productController.GetProductsByTag)
			products.GET("/:id", r.productController.GetProduct)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", r.tagController.GetTags)
			tags.GET("/:id", r.tagController.GetTag)
		}

		api.GET("/categories", r.categoryController.GetCategories)

		cart := api.Group("/me/cart")
		cart.Use(r.sessionMiddleware.RequireSession())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PATCH("/items/:id", r.cartController.UpdateItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
		}

		checkout := api.Group("/checkout")
		checkout.Use(r.sessionMiddleware.RequireSession())
		{
			checkout.POST("", r.checkoutController.Submit)
			checkout.GET("/:id", r.checkoutController.Get)
			checkout.POST("/:id/check", r.checkoutController.Check)
			checkout.DELETE("/:id", r.checkoutController.Abandon)
		}

		api.GET("/payment/status",
			r.sessionMiddleware.RequireSession(),
			r.paymentController.GetPaymentStatus,
		)

		api.POST("/sepay",
			r.sessionMiddleware.RequireSession(),
			r.paymentController.RequestQR,
		)

		// The payment provider calls this unauthenticated, the backend
		// verifies the provider's signature itself.
		api.POST("/sepay/webhook", r.paymentController.RelayWebhook)

		admin := api.Group("/admin")
		admin.Use(r.sessionMiddleware.RequireSession())
		{
			admin.Any("/*path", r.adminController.Handle)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
