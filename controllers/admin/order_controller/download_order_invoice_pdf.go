package order_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generate and download an invoice PDF for the order
// @Tags Admin - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 "PDF file"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[admin.orders.invoice] request for order: %s", id)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[admin.orders.invoice] order not found: %s", id)
			c.JSON(http.StatusNotFound, models.ErrorResponse("Order not found"))
			return
		}
		log.Printf("[admin.orders.invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	pdfBuffer, err := generateOrderInvoicePDF(&order)
	if err != nil {
		log.Printf("[admin.orders.invoice] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[admin.orders.invoice] invoice PDF downloaded for order %s", id)
}
