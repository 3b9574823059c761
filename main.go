package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pharma-sales-tracker/src/config"
	"pharma-sales-tracker/src/handlers"
	"pharma-sales-tracker/src/middleware"
	"pharma-sales-tracker/src/models"
	"pharma-sales-tracker/src/repositories"
	"pharma-sales-tracker/src/routes"
	"pharma-sales-tracker/src/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db := config.InitDB(cfg.DatabaseDSN)

	db.AutoMigrate(
		&models.Medicine{},
		&models.Hospital{},
		&models.Doctor{},
		&models.Employee{},
		&models.SalesOrder{},
		&models.OrderDetail{},
		&models.InventoryMovement{},
		&models.PurchaseRecord{},
	)

	// Insert sample data jika kosong
	if err := seedSampleData(db); err != nil {
		log.Printf("Failed to seed sample data: %v", err)
	}

	// Initialize repositories
	inventoryRepo := &repositories.InventoryRepository{DB: db}
	orderRepo := &repositories.OrderRepository{DB: db}

	// Initialize services
	inventoryService := &services.InventoryService{
		DB:   db,
		Repo: inventoryRepo,
	}
	orderService := &services.OrderService{
		DB:        db,
		Repo:      orderRepo,
		Inventory: inventoryRepo,
	}
	catalogService := &services.CatalogService{DB: db}

	// Initialize handlers
	inventoryHandler := &handlers.InventoryHandler{Service: inventoryService}
	orderHandler := &handlers.OrderHandler{Service: orderService}
	catalogHandler := &handlers.CatalogHandler{
		Service:   catalogService,
		Inventory: inventoryService,
		Orders:    orderService,
	}

	// Setup router dengan recovery middleware
	router := gin.Default()
	router.Use(middleware.RequestID())

	routes.RegisterHealthRoute(router)

	api := router.Group("/api/v1")
	routes.RegisterInventoryRoutes(api.Group("/inventory"), inventoryHandler)
	routes.RegisterOrderRoutes(api.Group("/orders"), orderHandler)
	routes.RegisterCatalogRoutes(api, catalogHandler)

	// Start server
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func seedSampleData(db *gorm.DB) error {
	var medicineCount int64
	db.Model(&models.Medicine{}).Count(&medicineCount)

	if medicineCount == 0 {
		log.Println("🌱 Seeding sample medicines...")

		medicines := []models.Medicine{
			{Name: "Amoxicillin Capsules", Specification: "0.25g x 24", Manufacturer: "North Pharma", ApprovalNumber: "H20003263", CostPrice: decimal.NewFromFloat(8.50), SuggestedPrice: decimal.NewFromFloat(15.00), StockQuantity: 100, SafetyStock: 20},
			{Name: "Ibuprofen Sustained Release", Specification: "0.3g x 20", Manufacturer: "East Labs", ApprovalNumber: "H10900089", CostPrice: decimal.NewFromFloat(6.00), SuggestedPrice: decimal.NewFromFloat(12.50), StockQuantity: 80, SafetyStock: 15},
			{Name: "Omeprazole Enteric Tablets", Specification: "20mg x 14", Manufacturer: "South Biotech", ApprovalNumber: "H20033444", CostPrice: decimal.NewFromFloat(12.00), SuggestedPrice: decimal.NewFromFloat(22.00), StockQuantity: 60, SafetyStock: 10},
		}

		for _, medicine := range medicines {
			if err := db.FirstOrCreate(&medicine, "name = ?", medicine.Name).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d medicines", len(medicines))
	}

	var hospitalCount int64
	db.Model(&models.Hospital{}).Count(&hospitalCount)

	if hospitalCount == 0 {
		log.Println("🌱 Seeding sample hospitals...")

		hospitals := []models.Hospital{
			{Name: "City First Hospital", Address: "12 Central Ave", Level: "Grade 3A", CreditLevel: "A"},
			{Name: "Riverside People's Hospital", Address: "88 River Rd", Level: "Grade 2A", CreditLevel: "B"},
		}

		for _, hospital := range hospitals {
			if err := db.FirstOrCreate(&hospital, "name = ?", hospital.Name).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d hospitals", len(hospitals))
	}

	var employeeCount int64
	db.Model(&models.Employee{}).Count(&employeeCount)

	if employeeCount == 0 {
		log.Println("🌱 Seeding sample employees...")

		employees := []models.Employee{
			{Name: "Li Wei", Phone: "13800000001", Role: "salesperson", Status: "active"},
			{Name: "Zhang Min", Phone: "13800000002", Role: "manager", Status: "active"},
		}

		for _, employee := range employees {
			if err := db.FirstOrCreate(&employee, "name = ?", employee.Name).Error; err != nil {
				return err
			}
		}
		log.Printf("✅ Seeded %d employees", len(employees))
	}

	return nil
}
