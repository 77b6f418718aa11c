package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/services"
	"github.com/restotrack/restaurant-app/utils"
)

type ReservationController struct {
	DB      *gorm.DB
	Service *services.ReservationService
}

func NewReservationController(db *gorm.DB, service *services.ReservationService) *ReservationController {
	return &ReservationController{DB: db, Service: service}
}

// GetAllReservations
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	query := rc.DB.Preload("Table").Order("reservation_time asc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// CreateReservation -> books a free table (free -> reserved)
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req services.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.CreateReservation(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservationByID
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	var reservation models.Reservation
	if err := rc.DB.Preload("Table").First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservationStatus -> active -> completed | cancelled
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("reservation_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Status models.ReservationStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Service.UpdateReservationStatus(uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", reservation)
}

// DeleteReservation -> admin cleanup; releases the table if still held
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, c.Param("reservation_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if reservation.Status == models.ReservationActive {
			if err := tx.Model(&models.Table{}).
				Where("id = ? AND status = ?", reservation.TableID, models.TableReserved).
				Update("status", models.TableFree).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&reservation).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", reservation.ID)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": reservation.ID})
}
