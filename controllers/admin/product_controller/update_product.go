package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/SOf1AN3/myks-sports-bolt/cache"
	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// UpdateProduct godoc
// @Summary Update product (partial)
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse("Product not found"))
			return
		}
		log.Printf("[admin.products] database error for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Sizes != nil {
		product.Sizes = models.StringList(*req.Sizes)
	}
	if req.Colors != nil {
		product.Colors = models.StringList(*req.Colors)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.DetailedDescription != nil {
		product.DetailedDescription = *req.DetailedDescription
	}
	if req.IsNew != nil {
		product.IsNew = *req.IsNew
	}
	if req.OnSale != nil {
		product.OnSale = *req.OnSale
	}

	// An original price exists only while the product is on sale; taking a
	// product off-sale drops any stale one.
	if !product.OnSale {
		product.OriginalPrice = nil
	}
	if product.OriginalPrice != nil && *product.OriginalPrice <= product.Price {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("originalPrice must be greater than price"))
		return
	}

	if err := config.DB.WithContext(ctx).Save(&product).Error; err != nil {
		log.Printf("[admin.products] failed to update product %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.products] updated product %s", id)

	c.JSON(http.StatusOK, product)
}
