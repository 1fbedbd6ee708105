package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order statuses. New orders always start as pending; transitions are an
// admin concern, the storefront never mutates an order after creation.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// OrderItem is a snapshot of one cart line at the time of purchase.
// Price is the charged unit price, decoupled from the live product so
// later price changes don't affect historical orders.
type OrderItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"omitempty,gte=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Size      string  `json:"size"`
	Color     string  `json:"color"`
}

// OrderItemList stores order line snapshots as JSONB.
type OrderItemList []OrderItem

func (l *OrderItemList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderItemList, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan OrderItemList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderItem{})
	}
	return json.Marshal(l)
}

// CustomerInfo is the optional contact block attached to an order.
type CustomerInfo struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Order is a persisted checkout result.
type Order struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	Items        OrderItemList  `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	Total        float64        `json:"total" gorm:"type:numeric(12,2);not null;check:total > 0"`
	Status       string         `json:"status" gorm:"not null;default:'pending';check:status IN ('pending','confirmed','shipped','delivered')"`
	CustomerInfo datatypes.JSON `json:"customerInfo,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"autoCreateTime;index:idx_orders_created_at,sort:desc"`
	UpdatedAt    time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest is the checkout payload. Items must be non-empty and
// total strictly positive; everything else is optional.
type CreateOrderRequest struct {
	Items        []OrderItem   `json:"items" binding:"required,min=1,dive"`
	Total        float64       `json:"total" binding:"required,gt=0"`
	CustomerInfo *CustomerInfo `json:"customerInfo,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed shipped delivered"`
}
