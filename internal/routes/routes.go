package routes

import (
	"net/http"

	"github.com/servetisikli/takstore-backend/internal/handlers"
	"github.com/servetisikli/takstore-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint under /api.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, accessSecret string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	user := api.Group("/user")
	{
		user.POST("/register", h.User.Register)
		user.GET("/verify-email/:token", h.User.VerifyEmail)
		user.POST("/resend-verification-email", h.User.ResendVerification)
		user.POST("/login", h.User.Login)
		user.POST("/logout", h.User.Logout)
		user.POST("/refresh-token", h.User.RefreshToken)
		user.POST("/forgot-password", h.User.ForgotPassword)
		user.PATCH("/reset-password/:token", h.User.ResetPassword)

		user.GET("/me", middleware.RequireAuth(accessSecret), h.User.Me)
	}

	products := api.Group("/product")
	{
		products.GET("", h.Product.ListProducts)
		products.GET("/search", h.Product.SearchProducts)
		products.GET("/category/:category", h.Product.GetProductsByCategory)
		products.GET("/:id", h.Product.GetProduct)
	}

	order := api.Group("/order")
	{
		// Guests may order and pay; a session, when present, ties the
		// order to the account.
		order.POST("", middleware.OptionalAuth(accessSecret), h.Order.CreateOrder)
		order.POST("/:id/create-payment-intent", h.Order.CreatePaymentIntent)
		order.PUT("/:id/pay", h.Order.ConfirmPayment)

		order.GET("/myorders", middleware.RequireAuth(accessSecret), h.Order.GetMyOrders)
		order.GET("/:id", middleware.RequireAuth(accessSecret), h.Order.GetOrder)

		admin := order.Group("", middleware.RequireAuth(accessSecret), middleware.RequireAdmin())
		{
			admin.PUT("/:id/status", h.Order.UpdateOrderStatus)
			admin.DELETE("/:id", h.Order.DeleteOrder)
		}
	}
}
