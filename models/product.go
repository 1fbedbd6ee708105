package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// StringList stores a list of string tokens (sizes, colours) as JSONB.
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = make(StringList, 0)
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Contains reports whether token is a member of the list.
func (l StringList) Contains(token string) bool {
	for _, t := range l {
		if t == token {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// Main Product Model (GORM)
// ═══════════════════════════════════════════════════════════

// Product is a sellable catalogue entry. Immutable from the storefront's
// perspective; created and updated only through the admin surface.
type Product struct {
	ID                  string     `json:"id" gorm:"primaryKey"`
	Name                string     `json:"name" gorm:"not null;index"`
	Price               float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	OriginalPrice       *float64   `json:"originalPrice,omitempty" gorm:"type:numeric(12,2)"`
	Image               string     `json:"image"`
	Category            string     `json:"category" gorm:"not null;index"`
	Sizes               StringList `json:"sizes" gorm:"type:jsonb;not null;default:'[]'"`
	Colors              StringList `json:"colors" gorm:"type:jsonb;not null;default:'[]'"`
	Description         string     `json:"description"`
	DetailedDescription string     `json:"detailedDescription"`
	IsNew               bool       `json:"isNew"`
	OnSale              bool       `json:"onSale"`
	CreatedAt           time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7 when no id was supplied
// (seeded demonstration products keep their short ids).
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.Must(uuid.NewV7()).String()
	}
	return nil
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ChargedPrice is the unit amount a line with this product is charged at.
// When a product is on sale and carries an original price, the original
// (pre-discount) price is charged; otherwise the listed price is.
// This mirrors the storefront's historical checkout behaviour.
func (p Product) ChargedPrice() float64 {
	if p.OnSale && p.OriginalPrice != nil && *p.OriginalPrice > 0 {
		return *p.OriginalPrice
	}
	return p.Price
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name                string   `json:"name" binding:"required" example:"T-Shirt Performance Pro"`
	Price               float64  `json:"price" binding:"required,gt=0" example:"45"`
	OriginalPrice       *float64 `json:"originalPrice" binding:"omitempty,gt=0" example:"60"`
	Image               string   `json:"image"`
	Category            string   `json:"category" binding:"required" example:"T-Shirts"`
	Sizes               []string `json:"sizes" binding:"required,min=1"`
	Colors              []string `json:"colors" binding:"required,min=1"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	IsNew               bool     `json:"isNew"`
	OnSale              bool     `json:"onSale"`
}

type UpdateProductRequest struct {
	Name                *string   `json:"name"`
	Price               *float64  `json:"price" binding:"omitempty,gt=0"`
	OriginalPrice       *float64  `json:"originalPrice" binding:"omitempty,gt=0"`
	Image               *string   `json:"image"`
	Category            *string   `json:"category"`
	Sizes               *[]string `json:"sizes"`
	Colors              *[]string `json:"colors"`
	Description         *string   `json:"description"`
	DetailedDescription *string   `json:"detailedDescription"`
	IsNew               *bool     `json:"isNew"`
	OnSale              *bool     `json:"onSale"`
}
