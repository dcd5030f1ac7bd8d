package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bottic/shop-backend/config"
	"github.com/bottic/shop-backend/internal/app/controller"
	"github.com/bottic/shop-backend/internal/middleware"
)

type Router struct {
	authController     *controller.AuthController
	userController     *controller.UserController
	productController  *controller.ProductController
	categoryController *controller.CategoryController
	cartController     *controller.CartController
	orderController    *controller.OrderController
	paymentController  *controller.PaymentController
	reviewController   *controller.ReviewController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	productController *controller.ProductController,
	categoryController *controller.CategoryController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	paymentController *controller.PaymentController,
	reviewController *controller.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		userController:     userController,
		productController:  productController,
		categoryController: categoryController,
		cartController:     cartController,
		orderController:    orderController,
		paymentController:  paymentController,
		reviewController:   reviewController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware("/health"))
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Shop API is running",
		})
	})

	// Legacy catalog routes, kept byte-compatible for existing clients.
	// New clients use /api/v1.
	router.GET("/products", r.productController.GetAllProducts)
	router.POST("/addProduct",
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRole("admin"),
		r.productController.CreateProduct,
	)
	router.DELETE("/deleteProduct",
		r.authMiddleware.Authenticate(),
		r.authMiddleware.RequireRole("admin"),
		r.productController.DeleteProductBySKU,
	)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		users := v1.Group("/users", r.authMiddleware.Authenticate())
		{
			users.POST("/me/profile", r.userController.CreateProfile)
			users.GET("/me/profile", r.userController.GetProfile)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetAllProducts)
			products.GET("/:id", r.productController.GetProductByID)
			products.GET("/:id/reviews", r.reviewController.GetProductReviews)

			products.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.UpdateProduct,
			)
			products.DELETE("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.productController.DeleteProductBySKU,
			)

			products.POST("/:id/reviews",
				r.authMiddleware.Authenticate(),
				r.reviewController.CreateReview,
			)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", r.categoryController.GetAllCategories)
			categories.GET("/:id", r.categoryController.GetCategoryByID)

			categories.POST("",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.CreateCategory,
			)
			categories.DELETE("/:id",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.categoryController.DeleteCategory,
			)
		}

		cart := v1.Group("/cart", r.authMiddleware.Authenticate())
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("/items", r.cartController.AddItem)
			cart.PUT("/items/:id", r.cartController.UpdateItem)
			cart.DELETE("/items/:id", r.cartController.RemoveItem)
		}

		orders := v1.Group("/orders", r.authMiddleware.Authenticate())
		{
			orders.POST("", r.orderController.Checkout)
			orders.GET("", r.orderController.GetMyOrders)
			orders.GET("/:id", r.orderController.GetOrderByID)
			orders.POST("/:id/cancel", r.orderController.CancelOrder)
			orders.GET("/:id/payment", r.paymentController.GetPaymentByOrder)
		}

		payments := v1.Group("/payments", r.authMiddleware.Authenticate())
		{
			payments.POST("", r.paymentController.CreatePayment)
		}

		reviews := v1.Group("/reviews", r.authMiddleware.Authenticate())
		{
			reviews.DELETE("/:id", r.reviewController.DeleteReview)
		}

		admin := v1.Group("/admin",
			r.authMiddleware.Authenticate(),
			r.authMiddleware.RequireRole("admin"),
		)
		{
			admin.DELETE("/users/:id", r.userController.DeleteUser)
			admin.DELETE("/orders/:id", r.orderController.DeleteOrder)
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
