package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/events"
	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/statemachine"
	"github.com/restotrack/restaurant-app/utils"
)

// OrderItemRequest is one requested (menu item, quantity) pair.
// Duplicate menu_item_id entries stay separate line items.
type OrderItemRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type OrderService struct {
	DB          *gorm.DB
	Ledger      *InventoryLedger
	TaxRate     decimal.Decimal
	ServiceRate decimal.Decimal
}

func NewOrderService(db *gorm.DB, ledger *InventoryLedger, taxRate, serviceRate decimal.Decimal) *OrderService {
	return &OrderService{
		DB:          db,
		Ledger:      ledger,
		TaxRate:     taxRate,
		ServiceRate: serviceRate,
	}
}

// PlaceOrder runs the whole placement as one transaction: order shell,
// then per item menu lookup -> inventory reserve -> line item with the
// price snapshotted, then totals. Any failure rolls the entire unit of
// work back: no partial line items, no partial decrements.
func (s *OrderService) PlaceOrder(placedBy *uint, tableID *uint, note string, items []OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w (menu item %d)", ErrInvalidQuantity, it.MenuItemID)
		}
	}

	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			TableID:    tableID,
			PlacedByID: placedBy,
			Status:     models.OrderPending,
			Note:       note,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, it := range items {
			var menu models.MenuItem
			if err := tx.First(&menu, it.MenuItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: id %d", ErrMenuItemNotFound, it.MenuItemID)
				}
				return err
			}
			if !menu.Available {
				return fmt.Errorf("%w: %s", ErrMenuItemUnavailable, menu.Name)
			}

			if _, err := s.Ledger.Reserve(tx, menu.Name, it.Quantity); err != nil {
				return err
			}

			item := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: menu.ID,
				Quantity:   it.Quantity,
				UnitPrice:  menu.Price,
				LineTotal:  menu.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).Round(2),
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}

		order.CalculateTotals(s.TaxRate, s.ServiceRate)
		return tx.Model(&order).Updates(map[string]interface{}{
			"subtotal":       order.Subtotal,
			"tax":            order.Tax,
			"service_charge": order.ServiceCharge,
			"total":          order.Total,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	// Reload with nested items for the response
	if err := s.DB.Preload("Items.MenuItem").Preload("Table").First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s placed: %d items, total %s", order.ID, len(order.Items), order.Total)
	events.BroadcastOrderUpdate(order)
	return &order, nil
}

// UpdateOrderStatus moves an order through the state machine. A
// rejected transition leaves the order untouched.
func (s *OrderService) UpdateOrderStatus(orderID string, newStatus models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			return err
		}
		if err := statemachine.CanTransitionOrder(order.Status, newStatus); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatusTransition, err)
		}

		order.Status = newStatus
		if statemachine.IsTerminalOrderStatus(newStatus) {
			now := time.Now()
			order.CompletedAt = &now
		}
		return tx.Model(&order).Updates(map[string]interface{}{
			"status":       order.Status,
			"completed_at": order.CompletedAt,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order %s status changed to %s", order.ID, order.Status)
	events.BroadcastOrderUpdate(order)
	return &order, nil
}
