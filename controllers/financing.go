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

// CreateFinancingInput defines the expected JSON structure
type CreateFinancingInput struct {
	SaleID       uint    `json:"saleId" binding:"required"`
	Provider     string  `json:"provider" binding:"required"`
	DownPayment  float64 `json:"downPayment"`
	TermMonths   int     `json:"termMonths" binding:"required,min=1"`
	InterestRate float64 `json:"interestRate"`
}

// UpdateFinancingInput defines the expected JSON structure
type UpdateFinancingInput struct {
	Provider *string `json:"provider"`
	Status   *string `json:"status" binding:"omitempty,oneof=pending approved rejected closed"`
}

// CreateFinancing attaches a financing record to an existing sale
func CreateFinancing(c *gin.Context) {
	var input CreateFinancingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, input.SaleID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		return
	}

	// One financing record per sale
	var existing models.Financing
	if err := config.DB.Where("sale_id = ?", input.SaleID).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Financing already exists for this sale")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	principal := sale.SalePrice - input.DownPayment
	if principal <= 0 {
		utils.RespondWithError(c, http.StatusBadRequest, "Down payment covers the full sale price")
		return
	}

	financing := models.Financing{
		SaleID:         input.SaleID,
		CustomerID:     sale.CustomerID,
		Provider:       input.Provider,
		Amount:         principal,
		DownPayment:    input.DownPayment,
		TermMonths:     input.TermMonths,
		InterestRate:   input.InterestRate,
		MonthlyPayment: utils.MonthlyPayment(principal, input.InterestRate, input.TermMonths),
	}

	if err := config.DB.Create(&financing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create financing record")
		return
	}

	config.DB.Model(&sale).Update("payment_status", "financed")

	c.JSON(http.StatusCreated, financing)
}

// GetFinancingRecords retrieves all financing records
func GetFinancingRecords(c *gin.Context) {
	query := config.DB.Model(&models.Financing{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []models.Financing
	if err := query.Order("created_at DESC").Find(&records).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve financing records")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetFinancing retrieves a specific financing record by ID
func GetFinancing(c *gin.Context) {
	financingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid financing ID format")
		return
	}

	var financing models.Financing
	if err := config.DB.First(&financing, financingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Financing record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, financing)
}

// UpdateFinancing updates a financing record's provider or status
func UpdateFinancing(c *gin.Context) {
	financingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid financing ID format")
		return
	}

	var input UpdateFinancingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var financing models.Financing
	if err := config.DB.First(&financing, financingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Financing record not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Provider != nil {
		financing.Provider = *input.Provider
	}
	if input.Status != nil {
		financing.Status = *input.Status
	}

	if err := config.DB.Save(&financing).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update financing record")
		return
	}

	c.JSON(http.StatusOK, financing)
}

// DeleteFinancing soft deletes a financing record
func DeleteFinancing(c *gin.Context) {
	financingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid financing ID format")
		return
	}

	result := config.DB.Delete(&models.Financing{}, financingID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete financing record")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Financing record not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Financing record deleted successfully"})
}
