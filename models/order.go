package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderClosed    OrderStatus = "closed"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	TableID       *uint           `gorm:"index" json:"table_id,omitempty"`
	Table         *Table          `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"table,omitempty"`
	PlacedByID    *uint           `gorm:"index" json:"placed_by,omitempty"`
	PlacedBy      *User           `gorm:"foreignKey:PlacedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Status        OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0.00" json:"subtotal"`
	Tax           decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0.00" json:"tax"`
	ServiceCharge decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0.00" json:"service_charge"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0.00" json:"total"`
	Note          string          `gorm:"type:text" json:"note,omitempty"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// CalculateTotals recomputes subtotal, tax, service charge and total
// from the current line items. Rounding is half away from zero to two
// decimal places, applied uniformly. Idempotent: calling it twice
// without an item change yields identical figures.
func (o *Order) CalculateTotals(taxRate, serviceRate decimal.Decimal) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal)
	}
	o.Subtotal = subtotal
	o.Tax = subtotal.Mul(taxRate).Round(2)
	o.ServiceCharge = subtotal.Mul(serviceRate).Round(2)
	o.Total = subtotal.Add(o.Tax).Add(o.ServiceCharge).Round(2)
	return o.Total
}
