package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// GetProductByID godoc
// @Summary Get a single product
// @Description Look up a stored product by id. Unlike the list route there is no demonstration fallback; an unknown id is a 404 even on a fresh install.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /products/{id} [get]
func GetProductByID(c *gin.Context) {
	id := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := config.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err == nil {
		c.JSON(http.StatusOK, product)
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found"))
		return
	}

	log.Printf("[store.product] database error for %s: %v", id, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
}
