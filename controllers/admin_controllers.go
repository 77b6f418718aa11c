package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> admin overview: orders by status, revenue of
// closed orders, table occupancy, low-stock items.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	orderCounts := map[string]int64{}
	for _, status := range []models.OrderStatus{
		models.OrderPending, models.OrderPreparing, models.OrderServed,
		models.OrderClosed, models.OrderCancelled,
	} {
		var count int64
		ac.DB.Model(&models.Order{}).Where("status = ?", status).Count(&count)
		orderCounts[string(status)] = count
	}

	var revenue decimal.NullDecimal
	row := ac.DB.Model(&models.Order{}).
		Where("status = ?", models.OrderClosed).
		Select("SUM(total)").
		Row()
	if err := row.Scan(&revenue); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	tableCounts := map[string]int64{}
	for _, status := range []models.TableStatus{
		models.TableFree, models.TableReserved, models.TableOccupied,
	} {
		var count int64
		ac.DB.Model(&models.Table{}).Where("status = ?", status).Count(&count)
		tableCounts[string(status)] = count
	}

	var lowStock []models.Inventory
	ac.DB.Where("quantity <= min_threshold").Find(&lowStock)

	var activeReservations int64
	ac.DB.Model(&models.Reservation{}).
		Where("status = ?", models.ReservationActive).
		Count(&activeReservations)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"orders":              orderCounts,
		"revenue":             revenue.Decimal,
		"tables":              tableCounts,
		"low_stock":           lowStock,
		"active_reservations": activeReservations,
	})
}
