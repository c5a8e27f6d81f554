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

// CreateSaleInput defines the expected JSON structure for recording a sale
type CreateSaleInput struct {
	VehicleID  uint    `json:"vehicleId" binding:"required"`
	CustomerID uint    `json:"customerId" binding:"required"`
	SalePrice  float64 `json:"salePrice" binding:"required"`
	Notes      string  `json:"notes"`

	// Optional financing attached at the time of sale
	Financing *SaleFinancingInput `json:"financing"`
}

type SaleFinancingInput struct {
	Provider     string  `json:"provider" binding:"required"`
	DownPayment  float64 `json:"downPayment"`
	TermMonths   int     `json:"termMonths" binding:"required"`
	InterestRate float64 `json:"interestRate"`
}

// UpdateSaleInput defines the expected JSON structure for updating a sale
type UpdateSaleInput struct {
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=unpaid partial paid financed"`
	Notes         *string `json:"notes"`
}

// CreateSale records a vehicle sale: marks the vehicle sold, writes a ledger
// transaction, and optionally attaches a financing record.
func CreateSale(c *gin.Context) {
	userID, ok := utils.UserIDFromContext(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	var input CreateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var vehicle models.Vehicle
	if err := config.DB.First(&vehicle, input.VehicleID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Vehicle not found")
		return
	}
	if vehicle.Status == "sold" {
		utils.RespondWithError(c, http.StatusConflict, "Vehicle is already sold")
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, input.CustomerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	sale := models.Sale{
		VehicleID:    input.VehicleID,
		CustomerID:   input.CustomerID,
		SoldByUserID: userID,
		SalePrice:    input.SalePrice,
		SaleDate:     time.Now(),
		Notes:        input.Notes,
	}
	if input.Financing != nil {
		sale.PaymentStatus = "financed"
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		if err := tx.Model(&vehicle).Update("status", "sold").Error; err != nil {
			return err
		}

		txn := models.Transaction{
			Type:            "sale",
			Amount:          input.SalePrice,
			Method:          "cash",
			CustomerID:      &input.CustomerID,
			Description:     "Sale of " + vehicle.Make + " " + vehicle.Model + " (" + vehicle.VIN + ")",
			TransactionDate: sale.SaleDate,
		}
		if input.Financing != nil {
			txn.Method = "financing"
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		if input.Financing != nil {
			principal := input.SalePrice - input.Financing.DownPayment
			financing := models.Financing{
				SaleID:         sale.ID,
				CustomerID:     input.CustomerID,
				Provider:       input.Financing.Provider,
				Amount:         principal,
				DownPayment:    input.Financing.DownPayment,
				TermMonths:     input.Financing.TermMonths,
				InterestRate:   input.Financing.InterestRate,
				MonthlyPayment: utils.MonthlyPayment(principal, input.Financing.InterestRate, input.Financing.TermMonths),
			}
			if err := tx.Create(&financing).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to record sale")
		return
	}

	config.DB.Preload("Financing").First(&sale, sale.ID)
	c.JSON(http.StatusCreated, sale)
}

// GetSales retrieves all sales
func GetSales(c *gin.Context) {
	query := config.DB.Preload("Financing").Model(&models.Sale{})

	if customerID := c.Query("customerId"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}

	var sales []models.Sale
	if err := query.Order("sale_date DESC").Find(&sales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sales")
		return
	}

	c.JSON(http.StatusOK, sales)
}

// GetSale retrieves a specific sale by ID
func GetSale(c *gin.Context) {
	saleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var sale models.Sale
	if err := config.DB.Preload("Financing").First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, sale)
}

// UpdateSale updates a sale's payment status or notes
func UpdateSale(c *gin.Context) {
	saleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	var input UpdateSaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var sale models.Sale
	if err := config.DB.First(&sale, saleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.PaymentStatus != nil {
		sale.PaymentStatus = *input.PaymentStatus
	}
	if input.Notes != nil {
		sale.Notes = *input.Notes
	}

	if err := config.DB.Save(&sale).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

// DeleteSale soft deletes a sale record
func DeleteSale(c *gin.Context) {
	saleID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid sale ID format")
		return
	}

	result := config.DB.Delete(&models.Sale{}, saleID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete sale")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Sale not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
