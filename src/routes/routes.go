package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharma-sales-tracker/src/handlers"
)

func RegisterInventoryRoutes(r *gin.RouterGroup, handler *handlers.InventoryHandler) {
	// GET endpoints
	r.GET("/movements", handler.GetMovements)
	r.GET("/movements/:medicine_id", handler.GetMedicineMovements)
	r.GET("/purchases", handler.GetPurchases)

	// POST endpoints
	r.POST("/purchase", handler.RecordPurchase)
	r.POST("/adjustment", handler.AdjustInventory)
}

func RegisterOrderRoutes(r *gin.RouterGroup, handler *handlers.OrderHandler) {
	r.GET("", handler.GetOrders)
	r.GET("/:id", handler.GetOrder)
	r.POST("", handler.CreateOrder)
	r.PUT("/:id/status", handler.UpdateOrderStatus)
	r.DELETE("/:id", handler.DeleteOrder)
}

func RegisterCatalogRoutes(api *gin.RouterGroup, handler *handlers.CatalogHandler) {
	medicines := api.Group("/medicines")
	medicines.GET("", handler.GetMedicines)
	medicines.GET("/:id", handler.GetMedicine)
	medicines.GET("/:id/inventory-movements", handler.GetMedicineMovements)
	medicines.GET("/:id/purchase-records", handler.GetMedicinePurchases)
	medicines.POST("", handler.CreateMedicine)
	medicines.PUT("/:id", handler.UpdateMedicine)
	medicines.DELETE("/:id", handler.DeleteMedicine)

	hospitals := api.Group("/hospitals")
	hospitals.GET("", handler.GetHospitals)
	hospitals.GET("/:id", handler.GetHospital)
	hospitals.GET("/:id/doctors", handler.GetHospitalDoctors)
	hospitals.POST("", handler.CreateHospital)
	hospitals.PUT("/:id", handler.UpdateHospital)
	hospitals.DELETE("/:id", handler.DeleteHospital)

	doctors := api.Group("/doctors")
	doctors.GET("", handler.GetDoctors)
	doctors.GET("/:id", handler.GetDoctor)
	doctors.POST("", handler.CreateDoctor)
	doctors.PUT("/:id", handler.UpdateDoctor)
	doctors.DELETE("/:id", handler.DeleteDoctor)

	employees := api.Group("/employees")
	employees.GET("", handler.GetEmployees)
	employees.GET("/:id", handler.GetEmployee)
	employees.GET("/:id/orders", handler.GetEmployeeOrders)
	employees.POST("", handler.CreateEmployee)
	employees.PUT("/:id", handler.UpdateEmployee)
	employees.DELETE("/:id", handler.DeleteEmployee)
}

// RegisterHealthRoute exposes a liveness probe outside the API group.
func RegisterHealthRoute(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
