package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/internal/handler"
	"restaurant-api/internal/models"
	"restaurant-api/internal/store"
	"restaurant-api/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Connect to Database
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&models.Category{},
		&models.Waiter{},
		&models.Table{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLine{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 4. Initialize Router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	h := handler.New(store.New(db), cfg.Server.Debug)

	api := r.Group("/api/v1")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", h.ListCategories)
			categories.GET("/:id", h.GetCategory)
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		waiters := api.Group("/waiters")
		{
			waiters.GET("", h.ListWaiters)
			waiters.GET("/:id", h.GetWaiter)
			waiters.POST("", h.CreateWaiter)
			waiters.PUT("/:id", h.UpdateWaiter)
			waiters.DELETE("/:id", h.DeleteWaiter)
		}

		tables := api.Group("/tables")
		{
			tables.GET("", h.ListTables)
			tables.GET("/:id", h.GetTable)
			tables.POST("", h.CreateTable)
			tables.PUT("/:id", h.UpdateTable)
			tables.DELETE("/:id", h.DeleteTable)
		}

		menuItems := api.Group("/menu-items")
		{
			menuItems.GET("", h.ListMenuItems)
			menuItems.GET("/:id", h.GetMenuItem)
			menuItems.POST("", h.CreateMenuItem)
			menuItems.PUT("/:id", h.UpdateMenuItem)
			menuItems.DELETE("/:id", h.DeleteMenuItem)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", h.ListOrders)
			orders.GET("/:id", h.GetOrder)
			orders.GET("/:id/lines", h.ListOrderLines)
			orders.POST("", h.CreateOrder)
			orders.PUT("/:id", h.UpdateOrder)
			orders.POST("/:id/close", h.CloseOrder)
			orders.DELETE("/:id", h.DeleteOrder)
		}

		orderLines := api.Group("/order-lines")
		{
			orderLines.GET("/:id", h.GetOrderLine)
			orderLines.POST("", h.CreateOrderLine)
			orderLines.PUT("/:id", h.UpdateOrderLine)
			orderLines.DELETE("/:id", h.DeleteOrderLine)
		}
	}

	r.GET("/health", h.Health)
	r.GET("/", h.Root)

	// 6. Start Server
	port := cfg.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
