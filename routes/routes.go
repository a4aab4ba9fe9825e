package routes

import (
	"admin-service/controllers"
	"admin-service/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints. Checkout and the provider webhook are
// unauthenticated (the storefront and Stripe call them directly); the admin
// read/write API sits behind the gateway auth header.
func RegisterRoutes(
	r *gin.Engine,
	checkout *controllers.CheckoutController,
	webhooks *controllers.WebhookController,
	products *controllers.ProductController,
	collections *controllers.CollectionController,
	orders *controllers.OrderController,
	customers *controllers.CustomerController,
	dashboard *controllers.DashboardController,
) {
	r.POST("/api/checkout", checkout.CreateSession)
	r.OPTIONS("/api/checkout", checkout.Options)

	r.POST("/api/webhooks", webhooks.HandleWebhook)

	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware())

	admin.GET("/products", products.GetProducts)
	admin.GET("/products/:id", products.GetProductByID)
	admin.POST("/products", products.CreateProduct)
	admin.POST("/products/:id", products.UpdateProduct)
	admin.DELETE("/products/:id", products.DeleteProduct)

	admin.GET("/collections", collections.GetCollections)
	admin.GET("/collections/:id", collections.GetCollectionByID)
	admin.POST("/collections", collections.CreateCollection)
	admin.POST("/collections/:id", collections.UpdateCollection)
	admin.DELETE("/collections/:id", collections.DeleteCollection)

	admin.GET("/orders", orders.GetOrders)
	admin.GET("/orders/:id", orders.GetOrderByID)

	admin.GET("/customers", customers.GetCustomers)

	admin.GET("/dashboard/metrics", dashboard.GetMetrics)
}
