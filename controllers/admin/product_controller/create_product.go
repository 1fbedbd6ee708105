package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/SOf1AN3/myks-sports-bolt/cache"
	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// CreateProduct godoc
// @Summary Create product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
		return
	}

	// An original price only makes sense on sale, and must exceed the
	// discounted price.
	if req.OriginalPrice != nil {
		if !req.OnSale {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("originalPrice is only allowed for products on sale"))
			return
		}
		if *req.OriginalPrice <= req.Price {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("originalPrice must be greater than price"))
			return
		}
	}

	product := models.Product{
		Name:                req.Name,
		Price:               req.Price,
		OriginalPrice:       req.OriginalPrice,
		Image:               req.Image,
		Category:            req.Category,
		Sizes:               models.StringList(req.Sizes),
		Colors:              models.StringList(req.Colors),
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		IsNew:               req.IsNew,
		OnSale:              req.OnSale,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.products] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	catalog_cache.Invalidate()
	log.Printf("[admin.products] created product %s (%s)", product.ID, product.Name)

	c.JSON(http.StatusCreated, product)
}
