package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/router"
	"github.com/restotrack/restaurant-app/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndOrderFlow walks the main flow:
// 0. Register admin + login -> token
// 1. Seed table, menu item and inventory through the API
// 2. Place an order
// 3. Walk the order pending -> preparing -> served -> closed
// 4. Verify stock was consumed and the dashboard adds up
func TestEndToEndOrderFlow(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	token := registerAndLogin(t, r)

	tableID := createResource(t, r, token, "/admin/tables", map[string]interface{}{
		"number":   1,
		"capacity": 4,
	})
	menuID := createResource(t, r, token, "/admin/menus", map[string]interface{}{
		"name":  "Nasi Goreng",
		"price": "12.50",
	})
	createResource(t, r, token, "/admin/inventory", map[string]interface{}{
		"item_name":     "Nasi Goreng",
		"quantity":      10,
		"min_threshold": 2,
	})

	// Place the order.
	w := authedRequest(t, r, token, "POST", "/admin/orders", map[string]interface{}{
		"table_id": tableID,
		"note":     "table by the window",
		"items": []map[string]interface{}{
			{"menu_item_id": menuID, "quantity": 3},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	orderID := placed.Data.ID
	require.NotEmpty(t, orderID)
	assert.Equal(t, "44.06", placed.Data.Total.String())

	// Walk the state machine to closed.
	for _, status := range []string{"preparing", "served", "closed"} {
		w = authedRequest(t, r, token, "PATCH", "/admin/orders/"+orderID, map[string]interface{}{
			"status": status,
		})
		require.Equal(t, http.StatusOK, w.Code, "transition to %s", status)
	}

	// Closed order rejects any further transition.
	w = authedRequest(t, r, token, "PATCH", "/admin/orders/"+orderID, map[string]interface{}{
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Stock went 10 -> 7.
	var inv models.Inventory
	require.NoError(t, db.Where("item_name = ?", "Nasi Goreng").First(&inv).Error)
	assert.Equal(t, 7, inv.Quantity)

	// Dashboard counts the closed order and its revenue.
	w = authedRequest(t, r, token, "GET", "/admin/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Data struct {
			Orders  map[string]int64 `json:"orders"`
			Revenue string           `json:"revenue"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Data.Orders["closed"])
	assert.Equal(t, "44.06", stats.Data.Revenue)
}

func TestLogoutRevokesToken(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	token := registerAndLogin(t, r)

	w := authedRequest(t, r, token, "GET", "/admin/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = authedRequest(t, r, token, "POST", "/admin/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = authedRequest(t, r, token, "GET", "/admin/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPublicMenuNeedsNoAuth(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/menus", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// The admin surface stays closed.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/admin/orders", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.MenuItem{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.Notification{},
	))
	return db
}

func registerAndLogin(t *testing.T, r *gin.Engine) string {
	w := plainRequest(t, r, "POST", "/register", map[string]interface{}{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "supersecret1",
		"role":     "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = plainRequest(t, r, "POST", "/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "supersecret1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func createResource(t *testing.T, r *gin.Engine, token, path string, payload map[string]interface{}) uint {
	w := authedRequest(t, r, token, "POST", path, payload)
	require.Equal(t, http.StatusCreated, w.Code, "POST %s: %s", path, w.Body.String())

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func plainRequest(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	return request(t, r, "", method, path, payload)
}

func authedRequest(t *testing.T, r *gin.Engine, token, method, path string, payload interface{}) *httptest.ResponseRecorder {
	return request(t, r, token, method, path, payload)
}

func request(t *testing.T, r *gin.Engine, token, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
