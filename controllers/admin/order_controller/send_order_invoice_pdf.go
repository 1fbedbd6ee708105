package order_controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
	"github.com/SOf1AN3/myks-sports-bolt/services"
)

type orderInvoiceMailer interface {
	SendOrderInvoiceEmail(data services.OrderInvoiceEmailData) error
}

var invoiceMailer orderInvoiceMailer

// InitResend wires the Resend account used for invoice emails.
func InitResend(apiKey, from string) {
	invoiceMailer = services.NewResendClient(apiKey, from)
}

// SendOrderInvoicePDF godoc
// @Summary Send order invoice PDF to customer
// @Description Generate the invoice PDF and email it to the customer address recorded on the order.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/orders/{id}/invoice/send [post]
func SendOrderInvoicePDF(c *gin.Context) {
	if invoiceMailer == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Invoice emails are not configured"))
		return
	}

	id := c.Param("id")
	log.Printf("[admin.orders.invoice] send request for order: %s", id)

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
		log.Printf("[admin.orders.invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	var customer models.CustomerInfo
	if len(order.CustomerInfo) > 0 {
		_ = json.Unmarshal(order.CustomerInfo, &customer)
	}
	if customer.Email == "" {
		log.Printf("[admin.orders.invoice] customer email missing for order: %s", id)
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Customer email not found"))
		return
	}
	if customer.Name == "" {
		customer.Name = "Client MYKS"
	}

	pdfBuffer, err := generateOrderInvoicePDF(&order)
	if err != nil {
		log.Printf("[admin.orders.invoice] pdf generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	items := make([]services.OrderInvoiceEmailItem, len(order.Items))
	for i, item := range order.Items {
		items[i] = services.OrderInvoiceEmailItem{
			Name:     item.Name,
			Size:     item.Size,
			Color:    item.Color,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Price * float64(item.Quantity),
		}
	}

	emailData := services.OrderInvoiceEmailData{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		OrderID:       order.ID,
		OrderDate:     order.CreatedAt.Format("02/01/2006"),
		Status:        order.Status,
		Items:         items,
		Total:         order.Total,
		PDFContent:    pdfBuffer.Bytes(),
	}

	// Send asynchronously; the admin gets an immediate acknowledgement and
	// delivery failures land in the logs.
	mailer := invoiceMailer
	go func() {
		if err := mailer.SendOrderInvoiceEmail(emailData); err != nil {
			log.Printf("[admin.orders.invoice] failed to send email for order %s: %v", id, err)
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"orderId": order.ID,
		"sentTo":  customer.Email,
	})
}
