package order_controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}))

	config.DB = db

	router := gin.New()
	router.POST("/api/orders", CreateOrder)
	router.GET("/api/orders", GetOrders)
	return router
}

func postOrder(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrderPersistsPendingOrder(t *testing.T) {
	router := setupTestRouter(t)

	w := postOrder(t, router, `{
		"items": [
			{"productId": "1", "name": "T-Shirt Performance Pro", "price": 60, "quantity": 2, "size": "M", "color": "Noir"},
			{"productId": "2", "name": "Legging Ultra Flex", "price": 65, "quantity": 1, "size": "S", "color": "Violet"}
		],
		"total": 185,
		"customerInfo": {"name": "Sofiane", "email": "sofiane@example.com"}
	}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 185, order.Total, 1e-9)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "T-Shirt Performance Pro", order.Items[0].Name)

	var count int64
	require.NoError(t, config.DB.Model(&models.Order{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	router := setupTestRouter(t)

	w := postOrder(t, router, `{"items": [], "total": 50}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Items are required and total must be greater than zero"}`, w.Body.String())
}

func TestCreateOrderRejectsNonPositiveTotal(t *testing.T) {
	router := setupTestRouter(t)

	w := postOrder(t, router, `{
		"items": [{"productId": "1", "name": "T-Shirt Performance Pro", "price": 60, "quantity": 1}],
		"total": 0
	}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Items are required and total must be greater than zero"}`, w.Body.String())
}

func TestCreateOrderRejectsMalformedJSON(t *testing.T) {
	router := setupTestRouter(t)

	w := postOrder(t, router, `{"items": [`)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderAcceptsZeroPricedItem(t *testing.T) {
	router := setupTestRouter(t)

	// Only the order total is validated; a free line item (a promotional
	// giveaway) is a legal snapshot.
	w := postOrder(t, router, `{
		"items": [
			{"productId": "2", "name": "Legging Ultra Flex", "price": 65, "quantity": 1},
			{"productId": "7", "name": "Tote Bag Offert", "price": 0, "quantity": 1}
		],
		"total": 65
	}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Items, 2)
	assert.Zero(t, order.Items[1].Price)
}

func TestCreateOrderCustomerInfoIsOptional(t *testing.T) {
	router := setupTestRouter(t)

	w := postOrder(t, router, `{
		"items": [{"productId": "2", "name": "Legging Ultra Flex", "price": 65, "quantity": 1}],
		"total": 65
	}`)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestGetOrdersNewestFirst(t *testing.T) {
	router := setupTestRouter(t)

	older := models.Order{
		Items:     models.OrderItemList{{ProductID: "1", Name: "T-Shirt Performance Pro", Price: 60, Quantity: 1}},
		Total:     60,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := models.Order{
		Items:     models.OrderItemList{{ProductID: "2", Name: "Legging Ultra Flex", Price: 65, Quantity: 1}},
		Total:     65,
		Status:    models.OrderStatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, config.DB.Create(&older).Error)
	require.NoError(t, config.DB.Create(&newer).Error)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestGetOrdersEmptyReturnsEmptyArray(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
