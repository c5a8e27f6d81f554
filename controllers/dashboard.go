package controllers

import (
	"net/http"
	"time"

	"dealerpro-backend/config"
	"dealerpro-backend/models"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	VehiclesInStock      int64             `json:"vehiclesInStock"`
	TotalCustomers       int64             `json:"totalCustomers"`
	MonthlyRevenue       float64           `json:"monthlyRevenue"`
	MonthlySales         int64             `json:"monthlySales"`
	OpenServiceTickets   int64             `json:"openServiceTickets"`
	PendingReminders     int64             `json:"pendingReminders"`
	LowStockParts        int64             `json:"lowStockParts"`
	UpcomingAppointments []UpcomingItem    `json:"upcomingAppointments"`
	RecentSales          []RecentSaleEntry `json:"recentSales"`
}

type UpcomingItem struct {
	CustomerName string    `json:"customerName"`
	Purpose      string    `json:"purpose"`
	ScheduledAt  time.Time `json:"scheduledAt"`
}

type RecentSaleEntry struct {
	CustomerName string    `json:"customerName"`
	Vehicle      string    `json:"vehicle"`
	SalePrice    float64   `json:"salePrice"`
	SaleDate     time.Time `json:"saleDate"`
}

func GetDashboardOverview(c *gin.Context) {
	var overview DashboardOverview

	config.DB.Model(&models.Vehicle{}).Where("status = ?", "available").
		Count(&overview.VehiclesInStock)

	config.DB.Model(&models.Customer{}).Where("is_active = ?", true).
		Count(&overview.TotalCustomers)

	// This month's revenue and sales
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	config.DB.Model(&models.Transaction{}).
		Where("transaction_date >= ? AND type != ?", firstOfMonth, "refund").
		Select("COALESCE(SUM(amount), 0)").Scan(&overview.MonthlyRevenue)
	config.DB.Model(&models.Sale{}).Where("sale_date >= ?", firstOfMonth).
		Count(&overview.MonthlySales)

	config.DB.Model(&models.ServiceTicket{}).
		Where("status IN ?", []string{"open", "in_progress"}).
		Count(&overview.OpenServiceTickets)

	config.DB.Model(&models.Reminder{}).Where("is_completed = ?", false).
		Count(&overview.PendingReminders)

	config.DB.Model(&models.Part{}).Where("quantity <= reorder_level").
		Count(&overview.LowStockParts)

	// Next 7 days of appointments
	config.DB.Raw(`
        SELECT c.name AS customer_name, a.purpose, a.scheduled_at
        FROM appointments a
        JOIN customers c ON c.id = a.customer_id
        WHERE a.deleted_at IS NULL
        AND a.status = 'scheduled'
        AND a.scheduled_at BETWEEN ? AND ?
        ORDER BY a.scheduled_at
        LIMIT 10
    `, now, now.AddDate(0, 0, 7)).Scan(&overview.UpcomingAppointments)

	// Last 5 sales
	config.DB.Raw(`
        SELECT c.name AS customer_name,
               v.make || ' ' || v.model AS vehicle,
               s.sale_price, s.sale_date
        FROM sales s
        JOIN customers c ON c.id = s.customer_id
        JOIN vehicles v ON v.id = s.vehicle_id
        WHERE s.deleted_at IS NULL
        ORDER BY s.sale_date DESC
        LIMIT 5
    `).Scan(&overview.RecentSales)

	c.JSON(http.StatusOK, overview)
}
