package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	auth_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/admin/auth_controller"
	admin_order_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/admin/order_controller"
	admin_product_controller "github.com/SOf1AN3/myks-sports-bolt/controllers/admin/product_controller"
	"github.com/SOf1AN3/myks-sports-bolt/middleware"
)

// SetupAdminRoutes registers the back-office surface: login is open (rate
// limited), everything else requires an admin JWT.
func SetupAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.RateLimiter(100, time.Minute))

	admin.POST("/login", auth_controller.AdminLogin)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		products := protected.Group("/products")
		{
			products.POST("", admin_product_controller.CreateProduct)
			products.PATCH("/:id", admin_product_controller.UpdateProduct)
			products.DELETE("/:id", admin_product_controller.DeleteProduct)
			products.POST("/:id/image", admin_product_controller.UploadProductImage)
		}

		orders := protected.Group("/orders")
		{
			orders.PATCH("/:id/status", admin_order_controller.UpdateOrderStatus)
			orders.GET("/:id/invoice", admin_order_controller.DownloadOrderInvoicePDF)
			orders.POST("/:id/invoice/send", admin_order_controller.SendOrderInvoicePDF)
		}
	}
}
