package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/restotrack/restaurant-app/models"
	"github.com/restotrack/restaurant-app/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetAllNotifications -> newest first
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifications []models.Notification
	if err := nc.DB.Order("created_at desc").Find(&notifications).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of notifications", notifications)
}

// GetNotificationByID
func (nc *NotificationController) GetNotificationByID(c *gin.Context) {
	var notification models.Notification
	if err := nc.DB.First(&notification, c.Param("notif_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification detail", notification)
}

// DeleteNotification
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	var notification models.Notification
	if err := nc.DB.First(&notification, c.Param("notif_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := nc.DB.Delete(&notification).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Notification deleted", gin.H{"id": notification.ID})
}
