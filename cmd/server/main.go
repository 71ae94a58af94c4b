package main

import (
	"time"

	"samsip_orders/internal/cache"
	"samsip_orders/internal/config"
	"samsip_orders/internal/database"
	"samsip_orders/internal/handlers"
	"samsip_orders/internal/logger"
	"samsip_orders/internal/repository"
	"samsip_orders/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logg := logger.New(cfg.LogLevel)

	// Initialize database and run migrations before accepting traffic
	db, err := database.Connect(cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		logg.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		logg.Fatal("Failed to migrate database: ", err)
	}
	logg.Info("Database connected and migrated successfully")

	// Redis cache is optional: without it every list goes to the database
	var cacheClient *cache.Client
	if cfg.RedisURL != "" {
		cacheClient, err = cache.Connect(cfg.RedisURL, time.Duration(cfg.CacheTTL)*time.Second)
		if err != nil {
			logg.Warn("Redis unavailable, running without cache: ", err)
			cacheClient = nil
		}
	}

	// Initialize repositories
	supplierRepo := repository.NewSupplierRepository(db)
	itemRepo := repository.NewItemRepository(db)
	unitRepo := repository.NewUnitRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize services
	policy, err := services.NewApprovalPolicy(cfg.ApprovalPassword, cfg.ApproverName)
	if err != nil {
		logg.Fatal("Failed to build approval policy: ", err)
	}
	supplierService := services.NewSupplierService(supplierRepo, cacheClient)
	itemService := services.NewItemService(itemRepo, cacheClient)
	unitService := services.NewUnitService(unitRepo, cacheClient)
	orderService := services.NewOrderService(db, orderRepo, supplierRepo, itemRepo, unitRepo, policy, cacheClient)
	importService := services.NewImportService(db, orderRepo, supplierRepo, itemRepo, unitRepo, cacheClient, logg)

	// Initialize handlers
	supplierHandler := handlers.NewSupplierHandler(supplierService, logg)
	itemHandler := handlers.NewItemHandler(itemService, logg)
	unitHandler := handlers.NewUnitHandler(unitService, logg)
	orderHandler := handlers.NewOrderHandler(orderService, importService, logg)

	// Setup routes
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	suppliers := router.Group("/suppliers")
	{
		suppliers.POST("/", supplierHandler.Create)
		suppliers.GET("/", supplierHandler.List)
		suppliers.PUT("/:id", supplierHandler.Update)
		suppliers.DELETE("/bulk-delete", supplierHandler.BulkDelete)
	}

	items := router.Group("/items")
	{
		items.POST("/", itemHandler.Create)
		items.GET("/", itemHandler.List)
		items.PUT("/:id", itemHandler.Update)
		items.DELETE("/bulk-delete", itemHandler.BulkDelete)
	}

	units := router.Group("/units")
	{
		units.POST("/", unitHandler.Create)
		units.GET("/", unitHandler.List)
		units.PUT("/:id", unitHandler.Update)
		units.DELETE("/bulk-delete", unitHandler.BulkDelete)
	}

	orders := router.Group("/orders")
	{
		orders.POST("/", orderHandler.Create)
		orders.GET("/", orderHandler.List)
		orders.PUT("/:id", orderHandler.Update)
		orders.DELETE("/bulk-delete", orderHandler.BulkDelete)
		// POST /orders/upload is served by the :id route, see OrderHandler.Upload
		orders.POST("/:id", orderHandler.Upload)
		orders.POST("/:id/approve", orderHandler.Approve)
		orders.POST("/:id/reject", orderHandler.Reject)
	}

	// Start server
	logg.Info("Server starting on port ", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logg.Fatal("Failed to start server: ", err)
	}
}
