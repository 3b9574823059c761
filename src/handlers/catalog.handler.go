package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pharma-sales-tracker/src/models"
	"pharma-sales-tracker/src/requests"
	"pharma-sales-tracker/src/services"
)

type CatalogHandler struct {
	Service   *services.CatalogService
	Inventory *services.InventoryService
	Orders    *services.OrderService
}

// ============ MEDICINES ============

func (h *CatalogHandler) GetMedicines(c *gin.Context) {
	medicines, err := h.Service.ListMedicines()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": medicines})
}

func (h *CatalogHandler) GetMedicine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	medicine, err := h.Service.GetMedicine(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": medicine})
}

func (h *CatalogHandler) CreateMedicine(c *gin.Context) {
	var req requests.MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	medicine := medicineFromRequest(&req)
	if err := h.Service.CreateMedicine(medicine); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Medicine created successfully", "id": medicine.ID})
}

func (h *CatalogHandler) UpdateMedicine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req requests.MedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateMedicine(id, medicineFromRequest(&req)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine updated successfully"})
}

func (h *CatalogHandler) DeleteMedicine(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteMedicine(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
}

// GetMedicineMovements - Movement history for one medicine, newest-first
func (h *CatalogHandler) GetMedicineMovements(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	movements, err := h.Inventory.ListMovements(&id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

// GetMedicinePurchases - Purchase history for one medicine, newest-first
func (h *CatalogHandler) GetMedicinePurchases(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	purchases, err := h.Inventory.ListPurchasesByMedicine(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// ============ HOSPITALS ============

func (h *CatalogHandler) GetHospitals(c *gin.Context) {
	hospitals, err := h.Service.ListHospitals()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": hospitals})
}

func (h *CatalogHandler) GetHospital(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	hospital, err := h.Service.GetHospital(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": hospital})
}

func (h *CatalogHandler) GetHospitalDoctors(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	doctors, err := h.Service.ListHospitalDoctors(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doctors})
}

func (h *CatalogHandler) CreateHospital(c *gin.Context) {
	var req requests.HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hospital := hospitalFromRequest(&req)
	if err := h.Service.CreateHospital(hospital); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Hospital created successfully", "id": hospital.ID})
}

func (h *CatalogHandler) UpdateHospital(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req requests.HospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateHospital(id, hospitalFromRequest(&req)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hospital updated successfully"})
}

func (h *CatalogHandler) DeleteHospital(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteHospital(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hospital deleted successfully"})
}

// ============ DOCTORS ============

func (h *CatalogHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.ListDoctors()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doctors})
}

func (h *CatalogHandler) GetDoctor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	doctor, err := h.Service.GetDoctor(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doctor})
}

func (h *CatalogHandler) CreateDoctor(c *gin.Context) {
	var req requests.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor := doctorFromRequest(&req)
	if err := h.Service.CreateDoctor(doctor); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Doctor created successfully", "id": doctor.ID})
}

func (h *CatalogHandler) UpdateDoctor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req requests.DoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateDoctor(id, doctorFromRequest(&req)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor updated successfully"})
}

func (h *CatalogHandler) DeleteDoctor(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteDoctor(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// ============ EMPLOYEES ============

func (h *CatalogHandler) GetEmployees(c *gin.Context) {
	employees, err := h.Service.ListEmployees()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employees})
}

func (h *CatalogHandler) GetEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	employee, err := h.Service.GetEmployee(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": employee})
}

// GetEmployeeOrders - Orders placed by one employee, newest-first
func (h *CatalogHandler) GetEmployeeOrders(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	orders, err := h.Orders.ListOrdersByEmployee(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func (h *CatalogHandler) CreateEmployee(c *gin.Context) {
	var req requests.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := employeeFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hire_date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	if err := h.Service.CreateEmployee(employee); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Employee created successfully", "id": employee.ID})
}

func (h *CatalogHandler) UpdateEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req requests.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := employeeFromRequest(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hire_date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	if err := h.Service.UpdateEmployee(id, employee); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func (h *CatalogHandler) DeleteEmployee(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteEmployee(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}

// ============ REQUEST MAPPING ============

func medicineFromRequest(req *requests.MedicineRequest) *models.Medicine {
	return &models.Medicine{
		Name:           req.Name,
		Specification:  req.Specification,
		Manufacturer:   req.Manufacturer,
		ApprovalNumber: req.ApprovalNumber,
		CostPrice:      req.CostPrice,
		SuggestedPrice: req.SuggestedPrice,
		StockQuantity:  req.StockQuantity,
		SafetyStock:    req.SafetyStock,
	}
}

func hospitalFromRequest(req *requests.HospitalRequest) *models.Hospital {
	return &models.Hospital{
		Name:        req.Name,
		Address:     req.Address,
		Level:       req.Level,
		CreditLevel: req.CreditLevel,
	}
}

func doctorFromRequest(req *requests.DoctorRequest) *models.Doctor {
	return &models.Doctor{
		Name:       req.Name,
		HospitalID: req.HospitalID,
		Department: req.Department,
		Position:   req.Position,
		Phone:      req.Phone,
		Wechat:     req.Wechat,
		Email:      req.Email,
		Notes:      req.Notes,
	}
}

func employeeFromRequest(req *requests.EmployeeRequest) (*models.Employee, error) {
	var hireDate *time.Time
	if req.HireDate != nil && *req.HireDate != "" {
		parsed, err := parseDate(*req.HireDate)
		if err != nil {
			return nil, err
		}
		hireDate = &parsed
	}

	return &models.Employee{
		Name:     req.Name,
		Phone:    req.Phone,
		HireDate: hireDate,
		Role:     req.Role,
		Status:   req.Status,
	}, nil
}
