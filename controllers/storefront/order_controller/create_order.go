package order_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// CreateOrder godoc
// @Summary Create new order (checkout)
// @Description Persist a checkout payload. Items must be non-empty and total strictly positive; the order starts as pending.
// @Tags Storefront - Orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Order
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Items are required and total must be greater than zero"))
		return
	}

	order := models.Order{
		Items:  models.OrderItemList(req.Items),
		Total:  req.Total,
		Status: models.OrderStatusPending,
	}
	if req.CustomerInfo != nil {
		raw, err := json.Marshal(req.CustomerInfo)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("Invalid customer info"))
			return
		}
		order.CustomerInfo = datatypes.JSON(raw)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&order).Error; err != nil {
		log.Printf("[store.orders] failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	log.Printf("📦 New order created: %s (%d items, total %.2f)", order.ID, len(order.Items), order.Total)

	c.JSON(http.StatusCreated, order)
}
