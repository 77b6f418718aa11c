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

type InventoryController struct {
	DB     *gorm.DB
	Ledger *services.InventoryLedger
}

func NewInventoryController(db *gorm.DB, ledger *services.InventoryLedger) *InventoryController {
	return &InventoryController{DB: db, Ledger: ledger}
}

// GetAllInventory -> full stock list with is_low flags
func (ic *InventoryController) GetAllInventory(c *gin.Context) {
	var items []models.Inventory
	if err := ic.DB.Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory records", items)
}

// GetLowStock -> items at or below their threshold
func (ic *InventoryController) GetLowStock(c *gin.Context) {
	var items []models.Inventory
	if err := ic.DB.Where("quantity <= min_threshold").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Low stock items", items)
}

// CreateInventory
func (ic *InventoryController) CreateInventory(c *gin.Context) {
	var req struct {
		ItemName     string `json:"item_name" binding:"required"`
		Quantity     int    `json:"quantity" binding:"min=0"`
		MinThreshold int    `json:"min_threshold" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	inv := models.Inventory{
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		MinThreshold: req.MinThreshold,
	}
	if err := ic.DB.Create(&inv).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	inv.IsLow = inv.Quantity <= inv.MinThreshold

	utils.InfoLogger.Printf("Inventory record created: %s (qty=%d)", inv.ItemName, inv.Quantity)
	utils.RespondJSON(c, http.StatusCreated, "Inventory record created", inv)
}

// GetInventoryByID
func (ic *InventoryController) GetInventoryByID(c *gin.Context) {
	var inv models.Inventory
	if err := ic.DB.First(&inv, c.Param("inventory_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory detail", inv)
}

// UpdateInventory -> name/threshold only; quantity moves through
// Restock or the order placement ledger.
func (ic *InventoryController) UpdateInventory(c *gin.Context) {
	var inv models.Inventory
	if err := ic.DB.First(&inv, c.Param("inventory_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		ItemName     *string `json:"item_name"`
		MinThreshold *int    `json:"min_threshold"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.ItemName != nil {
		inv.ItemName = *req.ItemName
	}
	if req.MinThreshold != nil {
		inv.MinThreshold = *req.MinThreshold
	}

	if err := ic.DB.Save(&inv).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	inv.IsLow = inv.Quantity <= inv.MinThreshold

	utils.RespondJSON(c, http.StatusOK, "Inventory record updated", inv)
}

// Restock -> add stock back in
func (ic *InventoryController) Restock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("inventory_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	inv, err := ic.Ledger.Restock(uint(id), req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Inventory restocked", inv)
}

// DeleteInventory
func (ic *InventoryController) DeleteInventory(c *gin.Context) {
	var inv models.Inventory
	if err := ic.DB.First(&inv, c.Param("inventory_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := ic.DB.Delete(&inv).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Inventory record %d (%s) deleted", inv.ID, inv.ItemName)
	utils.RespondJSON(c, http.StatusOK, "Inventory record deleted", gin.H{"id": inv.ID})
}
