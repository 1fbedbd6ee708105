package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// GetOrders godoc
// @Summary List orders (newest first)
// @Tags Storefront - Orders
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} map[string]string
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders := make([]models.Order, 0)
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		log.Printf("[store.orders] failed to fetch orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, orders)
}
