package routes

import (
	"dealerpro-backend/config"
	"dealerpro-backend/controllers"
	"dealerpro-backend/services"
	"dealerpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminderService *services.ReminderService, smsService *services.SMSService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	appointmentController := &controllers.AppointmentController{SMS: smsService}
	notificationController := &controllers.NotificationController{Service: reminderService}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Vehicle catalog
		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", controllers.CreateVehicle)
			vehicles.GET("", controllers.GetVehicles)
			vehicles.GET("/:id", controllers.GetVehicle)
			vehicles.PUT("/:id", controllers.UpdateVehicle)
			vehicles.DELETE("/:id", controllers.DeleteVehicle)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", controllers.DeleteCustomer)
		}

		// Sales routes
		sales := api.Group("/sales")
		{
			sales.POST("", controllers.CreateSale)
			sales.GET("", controllers.GetSales)
			sales.GET("/:id", controllers.GetSale)
			sales.PUT("/:id", controllers.UpdateSale)
			sales.DELETE("/:id", controllers.DeleteSale)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.GET("/:id", appointmentController.GetAppointment)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
			appointments.DELETE("/:id", appointmentController.DeleteAppointment)
		}

		// Service ticket routes
		tickets := api.Group("/service-tickets")
		{
			tickets.POST("", controllers.CreateServiceTicket)
			tickets.GET("", controllers.GetServiceTickets)
			tickets.GET("/:id", controllers.GetServiceTicket)
			tickets.POST("/:id/parts", controllers.AddTicketPart)
			tickets.PUT("/:id", controllers.UpdateServiceTicket)
			tickets.DELETE("/:id", controllers.DeleteServiceTicket)
		}

		// Parts inventory routes
		parts := api.Group("/parts")
		{
			parts.POST("", controllers.CreatePart)
			parts.GET("", controllers.GetParts)
			parts.GET("/low-stock", controllers.GetLowStockParts)
			parts.GET("/:id", controllers.GetPart)
			parts.PUT("/:id", controllers.UpdatePart)
			parts.DELETE("/:id", controllers.DeletePart)
		}

		// Financing routes
		financing := api.Group("/financing")
		{
			financing.POST("", controllers.CreateFinancing)
			financing.GET("", controllers.GetFinancingRecords)
			financing.GET("/:id", controllers.GetFinancing)
			financing.PUT("/:id", controllers.UpdateFinancing)
			financing.DELETE("/:id", controllers.DeleteFinancing)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.POST("", controllers.CreateTransaction)
			transactions.GET("", controllers.GetTransactions)
			transactions.GET("/:id", controllers.GetTransaction)
			transactions.DELETE("/:id", controllers.DeleteTransaction)
		}

		// Reminder routes
		reminders := api.Group("/reminders")
		{
			reminders.POST("", controllers.CreateReminder)
			reminders.GET("", controllers.GetReminders)
			reminders.GET("/:id", controllers.GetReminder)
			reminders.PUT("/:id", controllers.UpdateReminder)
			reminders.POST("/:id/complete", controllers.CompleteReminder)
			reminders.DELETE("/:id", controllers.DeleteReminder)
		}

		// Notification scheduler control (owner only)
		scheduler := api.Group("/notifications/scheduler", utils.RequireRole("owner"))
		{
			scheduler.POST("/start", notificationController.StartScheduler)
			scheduler.POST("/stop", notificationController.StopScheduler)
		}
		api.GET("/notifications/scheduler/status", notificationController.SchedulerStatus)

		// Dashboard routes
		api.GET("/dashboard", controllers.GetDashboardOverview)
	}

	return r
}
