package models

import (
	"time"
)

// Notification is a persisted alert for staff dashboards, currently
// emitted by the stock monitor when inventory crosses its threshold.
type Notification struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    *uint
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	Title     *string   `gorm:"type:varchar(100)" json:"title,omitempty"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
