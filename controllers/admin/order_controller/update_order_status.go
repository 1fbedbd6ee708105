package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Move an order through pending → confirmed → shipped → delivered. Status transitions are an admin concern; the storefront never mutates orders.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Status must be one of pending, confirmed, shipped, delivered"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Order not found"))
			return
		}
		log.Printf("[admin.orders] database error for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&order).
		Update("status", req.Status).Error; err != nil {
		log.Printf("[admin.orders] failed to update status for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}
	order.Status = req.Status

	log.Printf("[admin.orders] order %s → %s", id, req.Status)

	c.JSON(http.StatusOK, order)
}
