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

// CreateTransactionInput defines the expected JSON structure
type CreateTransactionInput struct {
	Type        string  `json:"type" binding:"required,oneof=sale service parts refund"`
	Amount      float64 `json:"amount" binding:"required"`
	Method      string  `json:"method" binding:"omitempty,oneof=cash card transfer financing"`
	CustomerID  *uint   `json:"customerId"`
	Description string  `json:"description"`
}

// CreateTransaction records a manual ledger entry (refunds, parts counter
// sales). Sale and service transactions are normally written by their own
// controllers.
func CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.CustomerID != nil {
		var customer models.Customer
		if err := config.DB.First(&customer, *input.CustomerID).Error; err != nil {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
			return
		}
	}

	txn := models.Transaction{
		Type:            input.Type,
		Amount:          input.Amount,
		Method:          input.Method,
		CustomerID:      input.CustomerID,
		Description:     input.Description,
		TransactionDate: time.Now(),
	}

	if err := config.DB.Create(&txn).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// GetTransactions retrieves ledger entries with optional filters
func GetTransactions(c *gin.Context) {
	query := config.DB.Model(&models.Transaction{})

	if txnType := c.Query("type"); txnType != "" {
		query = query.Where("type = ?", txnType)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			query = query.Where("transaction_date >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			query = query.Where("transaction_date < ?", t.AddDate(0, 0, 1))
		}
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date DESC").Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction retrieves a specific transaction by ID
func GetTransaction(c *gin.Context) {
	txnID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	var txn models.Transaction
	if err := config.DB.First(&txn, txnID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}

// DeleteTransaction soft deletes a ledger entry
func DeleteTransaction(c *gin.Context) {
	txnID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid transaction ID format")
		return
	}

	result := config.DB.Delete(&models.Transaction{}, txnID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
