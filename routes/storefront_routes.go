package routes

import (
	"github.com/gin-gonic/gin"

	health_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/storefront/health_controller"
	order_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/storefront/order_controller"
	product_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/storefront/product_controller"
)

// SetupStorefrontRoutes registers the public API surface (no auth required).
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:id", product_controller.GetProductByID)
	}

	orders := router.Group("/orders")
	{
		orders.POST("", order_controller.CreateOrder)
		orders.GET("", order_controller.GetOrders)
	}

	router.GET("/health", health_controller.Health)
}
