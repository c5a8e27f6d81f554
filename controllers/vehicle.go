package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"dealerpro-backend/config"
	"dealerpro-backend/models"
	"dealerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateVehicleInput defines the expected JSON structure for adding a vehicle
type CreateVehicleInput struct {
	VIN         string  `json:"vin" binding:"required"`
	Make        string  `json:"make" binding:"required"`
	Model       string  `json:"model" binding:"required"`
	Year        int     `json:"year" binding:"required"`
	Color       string  `json:"color"`
	Mileage     int     `json:"mileage"`
	Price       float64 `json:"price" binding:"required"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
}

// UpdateVehicleInput defines the expected JSON structure for updating a vehicle
type UpdateVehicleInput struct {
	Color       *string  `json:"color"`
	Mileage     *int     `json:"mileage"`
	Price       *float64 `json:"price"`
	Cost        *float64 `json:"cost"`
	Status      *string  `json:"status" binding:"omitempty,oneof=available reserved sold in_service"`
	Description *string  `json:"description"`
}

// CreateVehicle adds a vehicle to the catalog
func CreateVehicle(c *gin.Context) {
	var input CreateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateVIN(input.VIN) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid VIN format")
		return
	}

	// Check if VIN already exists
	var existingVehicle models.Vehicle
	if err := config.DB.Where("vin = ?", input.VIN).First(&existingVehicle).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Vehicle with this VIN already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	vehicle := models.Vehicle{
		VIN:         input.VIN,
		Make:        input.Make,
		Model:       input.Model,
		Year:        input.Year,
		Color:       input.Color,
		Mileage:     input.Mileage,
		Price:       input.Price,
		Cost:        input.Cost,
		Status:      "available",
		Description: input.Description,
	}

	if err := config.DB.Create(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// GetVehicles retrieves the vehicle catalog, optionally filtered by status
func GetVehicles(c *gin.Context) {
	query := config.DB.Model(&models.Vehicle{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if vehicleMake := c.Query("make"); vehicleMake != "" {
		query = query.Where("make = ?", vehicleMake)
	}

	var vehicles []models.Vehicle
	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle retrieves a specific vehicle by ID
func GetVehicle(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle updates an existing vehicle
func UpdateVehicle(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	var input UpdateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Color != nil {
		vehicle.Color = *input.Color
	}
	if input.Mileage != nil {
		vehicle.Mileage = *input.Mileage
	}
	if input.Price != nil {
		vehicle.Price = *input.Price
	}
	if input.Cost != nil {
		vehicle.Cost = *input.Cost
	}
	if input.Status != nil {
		vehicle.Status = *input.Status
	}
	if input.Description != nil {
		vehicle.Description = *input.Description
	}

	if err := config.DB.Save(&vehicle).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle soft deletes a vehicle
func DeleteVehicle(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid vehicle ID format")
		return
	}

	result := config.DB.Delete(&models.Vehicle{}, vehicleID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete vehicle")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
