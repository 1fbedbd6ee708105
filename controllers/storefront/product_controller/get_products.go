package product_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/SOf1AN3/myks-sports-bolt/cache"
	"github.com/SOf1AN3/myks-sports-bolt/catalog"
	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// GetProducts godoc
// @Summary List catalogue products
// @Description Retrieve all products, optionally filtered and sorted. When the product table is empty the fixed demonstration set is returned so a fresh install shows a browsable catalogue.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search term (name or category, case-insensitive)"
// @Param category query []string false "Categories (repeatable)"
// @Param size query []string false "Sizes (repeatable)"
// @Param color query []string false "Colours (repeatable)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort key (name | price-asc | price-desc | newest)"
// @Success 200 {array} models.Product
// @Failure 500 {object} map[string]string
// @Router /products [get]
func GetProducts(c *gin.Context) {
	products, err := loadCatalogue(c)
	if err != nil {
		log.Printf("[store.products] failed to fetch products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse("Internal server error"))
		return
	}

	sel := parseFilterSelection(c)
	if sel.Active() || sel.Sort != "" {
		products = catalog.Apply(products, sel)
	}

	c.JSON(http.StatusOK, products)
}

// loadCatalogue returns the full product list: cache first, then the
// database, then the seed fallback when the table is empty.
func loadCatalogue(c *gin.Context) ([]models.Product, error) {
	if cached, ok := catalog_cache.GetProducts(); ok {
		return cached, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.DB.WithContext(ctx).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}

	if len(products) == 0 {
		// Deliberate bootstrap affordance, not an error.
		log.Printf("[store.products] table empty, serving demonstration seed set")
		return catalog.SeedProducts(), nil
	}

	catalog_cache.SetProducts(products)
	return products, nil
}

func parseFilterSelection(c *gin.Context) catalog.FilterSelection {
	sel := catalog.FilterSelection{
		Search:     c.Query("q"),
		Categories: c.QueryArray("category"),
		Sizes:      c.QueryArray("size"),
		Colors:     c.QueryArray("color"),
	}

	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		sel.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		sel.MaxPrice = &v
	}

	switch c.Query("sortBy") {
	case "name":
		sel.Sort = catalog.SortNameAsc
	case "price-asc":
		sel.Sort = catalog.SortPriceAsc
	case "price-desc":
		sel.Sort = catalog.SortPriceDesc
	case "newest":
		sel.Sort = catalog.SortNewest
	}

	return sel
}
