package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restotrack/restaurant-app/models"
)

func TestStockMonitorAlertsOncePerCrossing(t *testing.T) {
	db := setupServiceDB(t)
	sm := NewStockMonitor(db)

	inv := models.Inventory{ItemName: "Minyak Goreng", Quantity: 2, MinThreshold: 5}
	require.NoError(t, db.Create(&inv).Error)

	sm.checkStock()
	sm.checkStock()

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 1, count, "repeated polls must not duplicate the alert")

	var notif models.Notification
	require.NoError(t, db.First(&notif).Error)
	assert.Contains(t, notif.Message, "Minyak Goreng")
}

func TestStockMonitorRearmsAfterRestock(t *testing.T) {
	db := setupServiceDB(t)
	sm := NewStockMonitor(db)

	inv := models.Inventory{ItemName: "Gula", Quantity: 1, MinThreshold: 5}
	require.NoError(t, db.Create(&inv).Error)

	sm.checkStock()

	// Restock above the threshold, then drain again.
	require.NoError(t, db.Model(&inv).Update("quantity", 50).Error)
	sm.checkStock()
	require.NoError(t, db.Model(&inv).Update("quantity", 3).Error)
	sm.checkStock()

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestStockMonitorIgnoresHealthyStock(t *testing.T) {
	db := setupServiceDB(t)
	sm := NewStockMonitor(db)

	inv := models.Inventory{ItemName: "Kopi", Quantity: 100, MinThreshold: 5}
	require.NoError(t, db.Create(&inv).Error)

	sm.checkStock()

	var count int64
	db.Model(&models.Notification{}).Count(&count)
	assert.Zero(t, count)
}
