package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/events"
	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/statemachine"
	"github.com/restotrack/restaurant-app/utils"
)

type ReservationRequest struct {
	TableID         uint      `json:"table_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	ReservationTime time.Time `json:"reservation_time" binding:"required"`
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// CreateReservation creates the reservation and flips the table
// free -> reserved in the same transaction. The conditional UPDATE on
// the table row guarantees at most one reservation wins a free table.
func (rs *ReservationService) CreateReservation(req ReservationRequest) (*models.Reservation, error) {
	var reservation models.Reservation
	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Table{}).
			Where("id = ? AND status = ?", req.TableID, models.TableFree).
			Update("status", models.TableReserved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: table %d is %s", ErrTableUnavailable, table.ID, table.Status)
		}

		reservation = models.Reservation{
			TableID:         req.TableID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			ReservationTime: req.ReservationTime,
			Status:          models.ReservationActive,
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		return nil, err
	}

	if err := rs.DB.Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %d created for table %d (%s)",
		reservation.ID, reservation.TableID, reservation.CustomerName)
	events.BroadcastReservationUpdate(reservation)
	events.BroadcastTableUpdate(reservation.Table)
	return &reservation, nil
}

// UpdateReservationStatus moves a reservation through its state
// machine; a terminal transition releases the table back to free.
func (rs *ReservationService) UpdateReservationStatus(id uint, newStatus models.ReservationStatus) (*models.Reservation, error) {
	var reservation models.Reservation
	err := rs.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			return err
		}
		if err := statemachine.CanTransitionReservation(reservation.Status, newStatus); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStatusTransition, err)
		}

		reservation.Status = newStatus
		if err := tx.Model(&reservation).Update("status", newStatus).Error; err != nil {
			return err
		}

		if statemachine.IsTerminalReservationStatus(newStatus) {
			return tx.Model(&models.Table{}).
				Where("id = ? AND status = ?", reservation.TableID, models.TableReserved).
				Update("status", models.TableFree).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := rs.DB.Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %d status changed to %s", reservation.ID, reservation.Status)
	events.BroadcastReservationUpdate(reservation)
	return &reservation, nil
}
