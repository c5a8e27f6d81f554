package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dealerpro-backend/config"
	"dealerpro-backend/models"
	"dealerpro-backend/services"
	"dealerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AppointmentController holds the SMS collaborator used for confirmations.
type AppointmentController struct {
	SMS *services.SMSService
}

// CreateAppointmentInput defines the expected JSON structure
type CreateAppointmentInput struct {
	CustomerID  uint      `json:"customerId" binding:"required"`
	VehicleID   *uint     `json:"vehicleId"`
	ScheduledAt time.Time `json:"scheduledAt" binding:"required"`
	Purpose     string    `json:"purpose" binding:"required,oneof=test_drive service delivery consultation"`
	Notes       string    `json:"notes"`
}

// UpdateAppointmentInput defines the expected JSON structure
type UpdateAppointmentInput struct {
	ScheduledAt *time.Time `json:"scheduledAt"`
	Status      *string    `json:"status" binding:"omitempty,oneof=scheduled completed cancelled no_show"`
	Notes       *string    `json:"notes"`
}

// CreateAppointment books an appointment and sends a best-effort SMS
// confirmation when the customer has a phone number.
func (ctrl *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
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

	appointment := models.Appointment{
		CustomerID:  input.CustomerID,
		VehicleID:   input.VehicleID,
		ScheduledAt: input.ScheduledAt,
		Purpose:     input.Purpose,
		Status:      "scheduled",
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	if ctrl.SMS != nil && customer.Phone != "" {
		if err := ctrl.SMS.SendAppointmentConfirmation(customer, appointment); err != nil {
			logrus.WithError(err).WithField("appointmentId", appointment.ID).
				Warn("appointment confirmation SMS failed")
		}
	}

	c.JSON(http.StatusCreated, appointment)
}

// GetAppointments retrieves appointments, optionally filtered
func (ctrl *AppointmentController) GetAppointments(c *gin.Context) {
	query := config.DB.Model(&models.Appointment{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if c.Query("upcoming") == "true" {
		query = query.Where("scheduled_at >= ? AND status = ?", time.Now(), "scheduled")
	}

	var appointments []models.Appointment
	if err := query.Order("scheduled_at").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// GetAppointment retrieves a specific appointment by ID
func (ctrl *AppointmentController) GetAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment updates an existing appointment
func (ctrl *AppointmentController) UpdateAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ScheduledAt != nil {
		appointment.ScheduledAt = *input.ScheduledAt
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.Notes != nil {
		appointment.Notes = *input.Notes
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment soft deletes an appointment
func (ctrl *AppointmentController) DeleteAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Delete(&models.Appointment{}, appointmentID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
