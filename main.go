package main

import (
	"fmt"
	"os"
	"strconv"

	"dealerpro-backend/config"
	"dealerpro-backend/models"
	"dealerpro-backend/routes"
	"dealerpro-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Customer{},
		&models.Sale{},
		&models.Appointment{},
		&models.ServiceTicket{},
		&models.ServiceTicketPart{},
		&models.Part{},
		&models.Financing{},
		&models.Transaction{},
		&models.Reminder{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	reminderService := services.NewReminderService(
		services.NewGormReminderStore(config.DB),
		services.NewSMTPMailer(),
	)
	smsService := services.NewSMSService()

	// The scheduler can also be controlled at runtime through the admin
	// endpoints; this just sets the boot-time default.
	if os.Getenv("REMINDER_SCHEDULER_ENABLED") == "true" {
		interval := services.DefaultIntervalMinutes
		if env := os.Getenv("REMINDER_INTERVAL_MINUTES"); env != "" {
			if m, err := strconv.Atoi(env); err == nil && m > 0 {
				interval = m
			}
		}
		reminderService.Start(interval)
	}

	r := routes.SetupRouter(reminderService, smsService)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
