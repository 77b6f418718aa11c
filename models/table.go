package models

import "time"

type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableReserved TableStatus = "reserved"
	TableOccupied TableStatus = "occupied"
)

// Table is a physical table. At most one reservation or order holds a
// table in a non-free state at a time.
type Table struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Number    uint        `gorm:"not null;uniqueIndex" json:"number"`
	Capacity  uint        `gorm:"not null" json:"capacity"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'free'" json:"status"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
