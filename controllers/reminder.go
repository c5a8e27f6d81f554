// controllers/reminder.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dealerpro-backend/config"
	"dealerpro-backend/models"
	"dealerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReminderInput defines the expected JSON structure
type CreateReminderInput struct {
	CustomerID   uint      `json:"customerId" binding:"required"`
	VehicleID    *uint     `json:"vehicleId"`
	ReminderType string    `json:"reminderType" binding:"required,oneof=maintenance inspection road_tax insurance appointment other"`
	DueDate      time.Time `json:"dueDate" binding:"required"`
	Description  string    `json:"description"`
}

// UpdateReminderInput defines the expected JSON structure
type UpdateReminderInput struct {
	ReminderType *string    `json:"reminderType" binding:"omitempty,oneof=maintenance inspection road_tax insurance appointment other"`
	DueDate      *time.Time `json:"dueDate"`
	Description  *string    `json:"description"`
	IsCompleted  *bool      `json:"isCompleted"`
}

// CreateReminder creates a reminder for a customer, optionally tied to a
// vehicle. Notification counters start at zero; only the notification
// service writes them afterwards.
func CreateReminder(c *gin.Context) {
	var input CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	if input.VehicleID != nil {
		var vehicle models.Vehicle
		if err := config.DB.First(&vehicle, *input.VehicleID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
			return
		}
	}

	reminder := models.Reminder{
		CustomerID:   input.CustomerID,
		VehicleID:    input.VehicleID,
		ReminderType: input.ReminderType,
		DueDate:      input.DueDate,
		Description:  input.Description,
		IsCompleted:  false,
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// GetReminders retrieves reminders, optionally filtered
func GetReminders(c *gin.Context) {
	query := config.DB.Model(&models.Reminder{})

	if c.Query("pending") == "true" {
		query = query.Where("is_completed = ?", false)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if reminderType := c.Query("type"); reminderType != "" {
		query = query.Where("reminder_type = ?", reminderType)
	}

	var reminders []models.Reminder
	if err := query.Order("due_date").Find(&reminders).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve reminders")
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// GetReminder retrieves a specific reminder by ID
func GetReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// UpdateReminder updates an existing reminder
func UpdateReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	var input UpdateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var reminder models.Reminder
	if err := config.DB.First(&reminder, reminderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ReminderType != nil {
		reminder.ReminderType = *input.ReminderType
	}
	if input.DueDate != nil {
		reminder.DueDate = *input.DueDate
	}
	if input.Description != nil {
		reminder.Description = *input.Description
	}
	if input.IsCompleted != nil {
		reminder.IsCompleted = *input.IsCompleted
	}

	if err := config.DB.Save(&reminder).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update reminder")
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// CompleteReminder marks a reminder completed, permanently excluding it
// from notification scans.
func CompleteReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	result := config.DB.Model(&models.Reminder{}).Where("id = ?", reminderID).
		Update("is_completed", true)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to complete reminder")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder completed"})
}

// DeleteReminder soft deletes a reminder
func DeleteReminder(c *gin.Context) {
	reminderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid reminder ID format")
		return
	}

	result := config.DB.Delete(&models.Reminder{}, reminderID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete reminder")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Reminder not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
