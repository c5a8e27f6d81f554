package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dealerpro-backend/config"
	"dealerpro-backend/models"
	"dealerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateServiceTicketInput defines the expected JSON structure
type CreateServiceTicketInput struct {
	CustomerID  uint   `json:"customerId" binding:"required"`
	VehicleID   uint   `json:"vehicleId" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateServiceTicketInput defines the expected JSON structure
type UpdateServiceTicketInput struct {
	Description *string  `json:"description"`
	Status      *string  `json:"status" binding:"omitempty,oneof=open in_progress completed cancelled"`
	LaborCost   *float64 `json:"laborCost"`
}

// TicketPartInput adds a part to a ticket
type TicketPartInput struct {
	PartID   uint `json:"partId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// CreateServiceTicket opens a workshop job for a customer's vehicle
func CreateServiceTicket(c *gin.Context) {
	var input CreateServiceTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}
	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	ticket := models.ServiceTicket{
		CustomerID:  input.CustomerID,
		VehicleID:   input.VehicleID,
		Description: input.Description,
		Status:      "open",
		OpenedAt:    time.Now(),
	}

	if err := config.DB.Create(&ticket).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service ticket")
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// GetServiceTickets retrieves service tickets, optionally filtered by status
func GetServiceTickets(c *gin.Context) {
	query := config.DB.Preload("Parts").Model(&models.ServiceTicket{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if vehicleID := c.Query("vehicleId"); vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}

	var tickets []models.ServiceTicket
	if err := query.Order("opened_at DESC").Find(&tickets).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve service tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// GetServiceTicket retrieves a specific ticket by ID
func GetServiceTicket(c *gin.Context) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format")
		return
	}

	var ticket models.ServiceTicket
	if err := config.DB.Preload("Parts").First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service ticket not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket, "total": ticket.Total()})
}

// AddTicketPart records a part used on a ticket and decrements inventory
func AddTicketPart(c *gin.Context) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format")
		return
	}

	var input TicketPartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var ticket models.ServiceTicket
	if err := config.DB.First(&ticket, ticketID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service ticket not found")
		return
	}
	if ticket.Status == "completed" || ticket.Status == "cancelled" {
		utils.RespondWithError(c, http.StatusConflict, "Ticket is closed")
		return
	}

	var part models.Part
	if err := config.DB.First(&part, input.PartID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Part not found")
		return
	}
	if part.Quantity < input.Quantity {
		utils.RespondWithError(c, http.StatusConflict,
			fmt.Sprintf("Insufficient stock: %d available", part.Quantity))
		return
	}

	ticketPart := models.ServiceTicketPart{
		ServiceTicketID: ticket.ID,
		PartID:          part.ID,
		PartName:        part.Name,
		Quantity:        input.Quantity,
		UnitPrice:       part.UnitPrice,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ticketPart).Error; err != nil {
			return err
		}
		return tx.Model(&part).Update("quantity", part.Quantity-input.Quantity).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add part to ticket")
		return
	}

	c.JSON(http.StatusCreated, ticketPart)
}

// UpdateServiceTicket updates a ticket; completing it closes the job and
// writes a ledger transaction for the total.
func UpdateServiceTicket(c *gin.Context) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format")
		return
	}

	var input UpdateServiceTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var ticket models.ServiceTicket
	if err := config.DB.Preload("Parts").First(&ticket, ticketID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service ticket not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		ticket.Description = *input.Description
	}
	if input.LaborCost != nil {
		ticket.LaborCost = *input.LaborCost
	}

	completing := input.Status != nil && *input.Status == "completed" && ticket.Status != "completed"
	if input.Status != nil {
		ticket.Status = *input.Status
	}
	if completing {
		now := time.Now()
		ticket.ClosedAt = &now
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&ticket).Error; err != nil {
			return err
		}
		if completing {
			txn := models.Transaction{
				Type:            "service",
				Amount:          ticket.Total(),
				CustomerID:      &ticket.CustomerID,
				Description:     fmt.Sprintf("Service ticket #%d", ticket.ID),
				TransactionDate: time.Now(),
			}
			return tx.Create(&txn).Error
		}
		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// DeleteServiceTicket soft deletes a ticket
func DeleteServiceTicket(c *gin.Context) {
	ticketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID format")
		return
	}

	result := config.DB.Delete(&models.ServiceTicket{}, ticketID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service ticket")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service ticket not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service ticket deleted successfully"})
}
