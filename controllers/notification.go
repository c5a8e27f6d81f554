// controllers/notification.go
package controllers

import (
	"net/http"

	"dealerpro-backend/services"
	"dealerpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// NotificationController exposes the reminder scheduler's lifecycle. It
// holds the single ReminderService instance constructed in main.
type NotificationController struct {
	Service *services.ReminderService
}

type StartSchedulerInput struct {
	IntervalMinutes int `json:"intervalMinutes" binding:"omitempty,min=1"`
}

// StartScheduler starts (or restarts) the reminder notification scheduler.
// The interval defaults to 60 minutes when omitted.
func (ctrl *NotificationController) StartScheduler(c *gin.Context) {
	var input StartSchedulerInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
			return
		}
	}

	interval := input.IntervalMinutes
	if interval <= 0 {
		interval = services.DefaultIntervalMinutes
	}

	ctrl.Service.Start(interval)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Reminder scheduler started",
		"intervalMinutes": interval,
	})
}

// StopScheduler stops the reminder notification scheduler.
func (ctrl *NotificationController) StopScheduler(c *gin.Context) {
	ctrl.Service.Stop()
	c.JSON(http.StatusOK, gin.H{"message": "Reminder scheduler stopped"})
}

// SchedulerStatus reports whether the scheduler is currently running.
func (ctrl *NotificationController) SchedulerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"running": ctrl.Service.IsRunning()})
}
