package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
)

func seedTable(t *testing.T, db *gorm.DB, number uint, status models.TableStatus) models.Table {
	table := models.Table{Number: number, Capacity: 4, Status: status}
	require.NoError(t, db.Create(&table).Error)
	return table
}

func reservationRequestFor(tableID uint) ReservationRequest {
	return ReservationRequest{
		TableID:         tableID,
		CustomerName:    "Budi Santoso",
		CustomerPhone:   "+62-812-0000-0001",
		ReservationTime: time.Now().Add(2 * time.Hour),
	}
}

func TestCreateReservationBooksFreeTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, 1, models.TableFree)

	reservation, err := svc.CreateReservation(reservationRequestFor(table.ID))
	require.NoError(t, err)

	assert.Equal(t, models.ReservationActive, reservation.Status)
	assert.Equal(t, table.ID, reservation.TableID)

	var reloaded models.Table
	require.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableReserved, reloaded.Status)
}

func TestCreateReservationRejectsBusyTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)

	for i, status := range []models.TableStatus{models.TableReserved, models.TableOccupied} {
		table := seedTable(t, db, uint(10+i), status)

		_, err := svc.CreateReservation(reservationRequestFor(table.ID))
		assert.ErrorIs(t, err, ErrTableUnavailable, "table with status %s", status)

		var count int64
		db.Model(&models.Reservation{}).Where("table_id = ?", table.ID).Count(&count)
		assert.Zero(t, count)
	}
}

func TestCreateReservationUnknownTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)

	_, err := svc.CreateReservation(reservationRequestFor(999))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompletingReservationReleasesTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, 2, models.TableFree)

	reservation, err := svc.CreateReservation(reservationRequestFor(table.ID))
	require.NoError(t, err)

	reservation, err = svc.UpdateReservationStatus(reservation.ID, models.ReservationCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCompleted, reservation.Status)

	var reloaded models.Table
	require.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableFree, reloaded.Status)
}

func TestCancellingReservationReleasesTable(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, 3, models.TableFree)

	reservation, err := svc.CreateReservation(reservationRequestFor(table.ID))
	require.NoError(t, err)

	reservation, err = svc.UpdateReservationStatus(reservation.ID, models.ReservationCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, reservation.Status)

	var reloaded models.Table
	require.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableFree, reloaded.Status)
}

func TestTerminalReservationRejectsFurtherMoves(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, 4, models.TableFree)

	reservation, err := svc.CreateReservation(reservationRequestFor(table.ID))
	require.NoError(t, err)

	_, err = svc.UpdateReservationStatus(reservation.ID, models.ReservationCancelled)
	require.NoError(t, err)

	_, err = svc.UpdateReservationStatus(reservation.ID, models.ReservationCompleted)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestReleaseLeavesOccupiedTableAlone(t *testing.T) {
	db := setupServiceDB(t)
	svc := NewReservationService(db)
	table := seedTable(t, db, 5, models.TableFree)

	reservation, err := svc.CreateReservation(reservationRequestFor(table.ID))
	require.NoError(t, err)

	// The party was seated, so staff flipped the table to occupied.
	require.NoError(t, db.Model(&models.Table{}).Where("id = ?", table.ID).
		Update("status", models.TableOccupied).Error)

	_, err = svc.UpdateReservationStatus(reservation.ID, models.ReservationCompleted)
	require.NoError(t, err)

	var reloaded models.Table
	require.NoError(t, db.First(&reloaded, table.ID).Error)
	assert.Equal(t, models.TableOccupied, reloaded.Status)
}
