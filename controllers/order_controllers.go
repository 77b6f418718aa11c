package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/services"
	"github.com/restotrack/restaurant-app/utils"
)

type OrderController struct {
	DB      *gorm.DB
	Service *services.OrderService
}

func NewOrderController(db *gorm.DB, service *services.OrderService) *OrderController {
	return &OrderController{DB: db, Service: service}
}

// GetAllOrders -> list orders with their line items
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := oc.DB.Preload("Items.MenuItem").Preload("Table").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// PlaceOrder -> the order placement transaction
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var body struct {
		TableID *uint                       `json:"table_id"`
		Note    string                      `json:"note"`
		Items   []services.OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var placedBy *uint
	if userID, exists := c.Get("user_id"); exists {
		if id, ok := userID.(uint); ok {
			placedBy = &id
		}
	}

	order, err := oc.Service.PlaceOrder(placedBy, body.TableID, body.Note, body.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed", order)
}

// GetOrderByID -> single order detail with nested items
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := oc.DB.Preload("Items.MenuItem").Preload("Table").
		First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus -> staff/admin walk the order state machine
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" && roleInterface != "staff" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.UpdateOrderStatus(c.Param("order_id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder -> admin only; line items cascade
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	roleInterface, _ := c.Get("role")
	if roleInterface != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, "id = ?", c.Param("order_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := oc.DB.Select("Items").Delete(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s deleted", order.ID)
	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": order.ID})
}
