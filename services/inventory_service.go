package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/utils"
)

// InventoryLedger is the single authoritative path for stock
// decrements. Order placement reserves through it; there is no
// secondary reactive deduction anywhere else.
type InventoryLedger struct {
	DB *gorm.DB
}

func NewInventoryLedger(db *gorm.DB) *InventoryLedger {
	return &InventoryLedger{DB: db}
}

// Reserve decrements stock for itemName by qty inside the caller's
// transaction. The conditional UPDATE (quantity >= qty) is atomic, so
// two concurrent reservations against the same row can never both
// succeed on the last units; the decrement becomes durable only when
// the enclosing transaction commits.
//
// Returns the remaining quantity on success.
func (il *InventoryLedger) Reserve(tx *gorm.DB, itemName string, qty int) (int, error) {
	var inv models.Inventory
	if err := tx.Where("item_name = ?", itemName).First(&inv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w for %s", ErrNoInventoryRecord, itemName)
		}
		return 0, err
	}

	res := tx.Model(&models.Inventory{}).
		Where("id = ? AND quantity >= ?", inv.ID, qty).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", qty))
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		// Re-read so the error reports the stock the caller raced against.
		if err := tx.First(&inv, inv.ID).Error; err != nil {
			return 0, err
		}
		return 0, &InsufficientStockError{ItemName: itemName, Requested: qty, Available: inv.Quantity}
	}

	if err := tx.First(&inv, inv.ID).Error; err != nil {
		return 0, err
	}
	return inv.Quantity, nil
}

// Restock adds stock back, e.g. after a delivery. This is the only
// mutation path besides Reserve.
func (il *InventoryLedger) Restock(id uint, qty int) (*models.Inventory, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: restock amount must be positive", ErrInvalidQuantity)
	}

	var inv models.Inventory
	err := il.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&inv, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&inv).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", qty)).Error; err != nil {
			return err
		}
		return tx.First(&inv, id).Error
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Inventory %s restocked by %d (now %d)", inv.ItemName, qty, inv.Quantity)
	return &inv, nil
}
