package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/controllers"
	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/services"
)

func setupOrderRouter(db *gorm.DB, role string) *gin.Engine {
	router := gin.New()
	router.Use(asRole(role, 1))

	tax, _ := decimal.NewFromString("0.075")
	service, _ := decimal.NewFromString("0.10")
	svc := services.NewOrderService(db, services.NewInventoryLedger(db), tax, service)
	orderCtrl := controllers.NewOrderController(db, svc)

	router.GET("/orders", orderCtrl.GetAllOrders)
	router.POST("/orders", orderCtrl.PlaceOrder)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PATCH("/orders/:order_id", orderCtrl.UpdateOrderStatus)
	router.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	return router
}

func seedOrderFixtures(t *testing.T, db *gorm.DB) models.MenuItem {
	price, _ := decimal.NewFromString("12.50")
	menu := models.MenuItem{Name: "Nasi Goreng", Price: price, Available: true}
	require.NoError(t, db.Create(&menu).Error)
	require.NoError(t, db.Create(&models.Inventory{
		ItemName: "Nasi Goreng", Quantity: 10, MinThreshold: 2,
	}).Error)
	return menu
}

func TestPlaceOrderEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")
	menu := seedOrderFixtures(t, db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"note": "extra sambal",
		"items": []map[string]interface{}{
			{"menu_item_id": menu.ID, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, "44.06", order.Total.String())
	require.NotNil(t, order.PlacedByID)
	assert.EqualValues(t, 1, *order.PlacedByID)

	var inv models.Inventory
	require.NoError(t, db.Where("item_name = ?", "Nasi Goreng").First(&inv).Error)
	assert.Equal(t, 7, inv.Quantity)
}

func TestPlaceOrderEmptyItemsRejected(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")
	menu := seedOrderFixtures(t, db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": menu.ID, "quantity": 50},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "not enough stock for Nasi Goreng")

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestPlaceOrderUnknownMenuItemReturns404(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": 999, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")
	menu := seedOrderFixtures(t, db)

	w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": menu.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)

	w = doJSON(t, router, "PATCH", "/orders/"+order.ID, map[string]interface{}{
		"status": "preparing",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// Skipping straight to closed violates the state machine.
	w = doJSON(t, router, "PATCH", "/orders/"+order.ID, map[string]interface{}{
		"status": "closed",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateOrderStatusForbiddenForCustomers(t *testing.T) {
	db := newTestDB(t)
	staffRouter := setupOrderRouter(db, "staff")
	customerRouter := setupOrderRouter(db, "customer")
	menu := seedOrderFixtures(t, db)

	w := doJSON(t, staffRouter, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": menu.ID, "quantity": 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)

	w = doJSON(t, customerRouter, "PATCH", "/orders/"+order.ID, map[string]interface{}{
		"status": "preparing",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteOrderCascadesItems(t *testing.T) {
	db := newTestDB(t)
	adminRouter := setupOrderRouter(db, "admin")
	menu := seedOrderFixtures(t, db)

	w := doJSON(t, adminRouter, "POST", "/orders", map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": menu.ID, "quantity": 2},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)

	w = doJSON(t, adminRouter, "DELETE", "/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var orderCount, itemCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderItem{}).Count(&itemCount)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestGetAllOrdersFilterByStatus(t *testing.T) {
	db := newTestDB(t)
	router := setupOrderRouter(db, "staff")
	menu := seedOrderFixtures(t, db)

	for i := 0; i < 2; i++ {
		w := doJSON(t, router, "POST", "/orders", map[string]interface{}{
			"items": []map[string]interface{}{
				{"menu_item_id": menu.ID, "quantity": 1},
			},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var first models.Order
	require.NoError(t, db.First(&first).Error)
	w := doJSON(t, router, "PATCH", "/orders/"+first.ID, map[string]interface{}{
		"status": "preparing",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "GET", "/orders?status=pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	orders, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, orders, 1)
}
