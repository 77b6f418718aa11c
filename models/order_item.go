package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem belongs exclusively to its order (deleting the order
// deletes its items). UnitPrice is the menu price frozen at creation;
// the RESTRICT constraint forbids deleting a referenced menu item.
type OrderItem struct {
	ID      string `gorm:"type:varchar(36);primaryKey" json:"id"`
	OrderID string `gorm:"type:varchar(36);not null;index:idx_order_menu" json:"order_id"`
	// Omitting Order field from JSON to avoid recursive nesting
	Order      Order           `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint            `gorm:"not null;index:idx_order_menu" json:"menu_item_id"`
	MenuItem   MenuItem        `gorm:"foreignKey:MenuItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"menu_item"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	LineTotal  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"line_total"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}
