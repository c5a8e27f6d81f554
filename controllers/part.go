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

// CreatePartInput defines the expected JSON structure
type CreatePartInput struct {
	SKU          string  `json:"sku" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Quantity     int     `json:"quantity"`
	ReorderLevel int     `json:"reorderLevel"`
	UnitPrice    float64 `json:"unitPrice" binding:"required"`
	Supplier     string  `json:"supplier"`
}

// UpdatePartInput defines the expected JSON structure
type UpdatePartInput struct {
	Name         *string  `json:"name"`
	Quantity     *int     `json:"quantity"`
	ReorderLevel *int     `json:"reorderLevel"`
	UnitPrice    *float64 `json:"unitPrice"`
	Supplier     *string  `json:"supplier"`
}

// CreatePart adds a part to inventory
func CreatePart(c *gin.Context) {
	var input CreatePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Check if SKU already exists
	var existingPart models.Part
	if err := config.DB.Where("sku = ?", input.SKU).First(&existingPart).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Part with this SKU already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	part := models.Part{
		SKU:          input.SKU,
		Name:         input.Name,
		Quantity:     input.Quantity,
		ReorderLevel: input.ReorderLevel,
		UnitPrice:    input.UnitPrice,
		Supplier:     input.Supplier,
	}
	if part.ReorderLevel == 0 {
		part.ReorderLevel = 5
	}

	if err := config.DB.Create(&part).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create part")
		return
	}

	c.JSON(http.StatusCreated, part)
}

// GetParts retrieves the parts inventory
func GetParts(c *gin.Context) {
	var parts []models.Part
	if err := config.DB.Order("name").Find(&parts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve parts")
		return
	}

	c.JSON(http.StatusOK, parts)
}

// GetLowStockParts lists parts at or below their reorder level
func GetLowStockParts(c *gin.Context) {
	var parts []models.Part
	if err := config.DB.Where("quantity <= reorder_level").Order("quantity").
		Find(&parts).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve parts")
		return
	}

	c.JSON(http.StatusOK, parts)
}

// GetPart retrieves a specific part by ID
func GetPart(c *gin.Context) {
	partID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	var part models.Part
	if err := config.DB.First(&part, partID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Part not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, part)
}

// UpdatePart updates an existing part
func UpdatePart(c *gin.Context) {
	partID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	var input UpdatePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var part models.Part
	if err := config.DB.First(&part, partID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Part not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		part.Name = *input.Name
	}
	if input.Quantity != nil {
		part.Quantity = *input.Quantity
	}
	if input.ReorderLevel != nil {
		part.ReorderLevel = *input.ReorderLevel
	}
	if input.UnitPrice != nil {
		part.UnitPrice = *input.UnitPrice
	}
	if input.Supplier != nil {
		part.Supplier = *input.Supplier
	}

	if err := config.DB.Save(&part).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update part")
		return
	}

	c.JSON(http.StatusOK, part)
}

// DeletePart soft deletes a part
func DeletePart(c *gin.Context) {
	partID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid part ID format")
		return
	}

	result := config.DB.Delete(&models.Part{}, partID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete part")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Part not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Part deleted successfully"})
}
