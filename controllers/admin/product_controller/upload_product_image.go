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
	"github.com/SOf1AN3/myks-sports-bolt/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the Cloudinary account used for product images.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = svc
	return nil
}

// UploadProductImage godoc
// @Summary Upload product image
// @Description Upload an image for the product; the stored image reference is replaced with the Cloudinary secure URL.
// @Tags Admin - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/products/{id}/image [post]
func UploadProductImage(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Image uploads are not configured"))
		return
	}

	id := c.Param("id")

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
		log.Printf("[admin.products.image] database error for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Image file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse("Failed to read image file"))
		return
	}
	defer file.Close()

	url, err := cloudinaryService.UploadImage(c.Request.Context(), file, product.ID, "products")
	if err != nil {
		log.Printf("[admin.products.image] upload failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Failed to upload image"))
		return
	}

	if err := config.DB.WithContext(ctx).
		Model(&product).
		Update("image", url).Error; err != nil {
		log.Printf("[admin.products.image] failed to store image url for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}
	product.Image = url

	catalog_cache.Invalidate()
	log.Printf("[admin.products.image] image updated for product %s", id)

	c.JSON(http.StatusOK, product)
}
