package models

import (
	"time"

	"gorm.io/gorm"
)

// Inventory tracks stock for a menu item, keyed by item name.
// Quantity is only mutated through the inventory ledger (reserve) or
// an explicit restock, never by order totals logic.
type Inventory struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ItemName     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"item_name"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	MinThreshold int       `gorm:"not null;default:5" json:"min_threshold"`
	IsLow        bool      `gorm:"-" json:"is_low"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

func (i *Inventory) AfterFind(tx *gorm.DB) error {
	i.IsLow = i.Quantity <= i.MinThreshold
	return nil
}
