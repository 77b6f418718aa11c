package services

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/events"
	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/utils"
)

// StockMonitor polls inventory and raises a low-stock alert once per
// threshold crossing: a Notification row plus a websocket broadcast.
// The alert re-arms when the item is restocked above its threshold.
type StockMonitor struct {
	DB       *gorm.DB
	StopChan chan struct{}
	Interval time.Duration

	mu      sync.Mutex
	alerted map[uint]bool
}

func NewStockMonitor(db *gorm.DB) *StockMonitor {
	return &StockMonitor{
		DB:       db,
		StopChan: make(chan struct{}),
		Interval: 30 * time.Second,
		alerted:  make(map[uint]bool),
	}
}

func (sm *StockMonitor) Start() {
	go func() {
		ticker := time.NewTicker(sm.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sm.checkStock()
			case <-sm.StopChan:
				return
			}
		}
	}()
}

func (sm *StockMonitor) Stop() {
	close(sm.StopChan)
}

func (sm *StockMonitor) checkStock() {
	var items []models.Inventory
	if err := sm.DB.Find(&items).Error; err != nil {
		utils.ErrorLogger.Printf("Stock monitor: error fetching inventory: %v", err)
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, inv := range items {
		low := inv.Quantity <= inv.MinThreshold
		if low && !sm.alerted[inv.ID] {
			sm.alerted[inv.ID] = true
			sm.raiseAlert(inv)
		} else if !low && sm.alerted[inv.ID] {
			delete(sm.alerted, inv.ID)
		}
	}
}

func (sm *StockMonitor) raiseAlert(inv models.Inventory) {
	title := "Low stock"
	notif := models.Notification{
		Title: &title,
		Message: fmt.Sprintf("%s is low on stock: %d left (threshold %d)",
			inv.ItemName, inv.Quantity, inv.MinThreshold),
	}
	if err := sm.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Stock monitor: error saving notification: %v", err)
	}

	utils.InfoLogger.Printf("ALERT: %s is critically low (%d <= %d)",
		inv.ItemName, inv.Quantity, inv.MinThreshold)
	events.BroadcastLowStockAlert(inv)
}
