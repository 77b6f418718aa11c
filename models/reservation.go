package models

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

type Reservation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	TableID         uint              `gorm:"not null;index" json:"table_id"`
	Table           Table             `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"table"`
	CustomerName    string            `gorm:"type:varchar(100);not null" json:"customer_name"`
	CustomerPhone   string            `gorm:"type:varchar(20);not null" json:"customer_phone"`
	ReservationTime time.Time         `gorm:"not null" json:"reservation_time"`
	Status          ReservationStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt       time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"not null" json:"updated_at"`
}
