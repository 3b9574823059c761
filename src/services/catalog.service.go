package services

import (
	"errors"

	"gorm.io/gorm"

	"pharma-sales-tracker/src/models"
)

// CatalogService covers the master-data CRUD: medicines, hospitals, doctors
// and employees. None of these operations touch stock or the movement log.
type CatalogService struct {
	DB *gorm.DB
}

// ============ MEDICINES ============

func (s *CatalogService) ListMedicines() ([]models.Medicine, error) {
	medicines := make([]models.Medicine, 0)
	err := s.DB.Order("created_at DESC, id DESC").Find(&medicines).Error
	return medicines, err
}

func (s *CatalogService) GetMedicine(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := s.DB.First(&medicine, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "medicine", ID: id}
		}
		return nil, err
	}
	return &medicine, nil
}

func (s *CatalogService) CreateMedicine(medicine *models.Medicine) error {
	if medicine.Name == "" {
		return validationErrorf("medicine name is required")
	}
	return s.DB.Create(medicine).Error
}

func (s *CatalogService) UpdateMedicine(id uint, medicine *models.Medicine) error {
	if medicine.Name == "" {
		return validationErrorf("medicine name is required")
	}

	result := s.DB.Model(&models.Medicine{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":            medicine.Name,
			"specification":   medicine.Specification,
			"manufacturer":    medicine.Manufacturer,
			"approval_number": medicine.ApprovalNumber,
			"cost_price":      medicine.CostPrice,
			"suggested_price": medicine.SuggestedPrice,
			"stock_quantity":  medicine.StockQuantity,
			"safety_stock":    medicine.SafetyStock,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "medicine", ID: id}
	}
	return nil
}

func (s *CatalogService) DeleteMedicine(id uint) error {
	result := s.DB.Delete(&models.Medicine{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "medicine", ID: id}
	}
	return nil
}

// ============ HOSPITALS ============

// ListHospitals returns hospitals newest-first with their doctor headcount.
func (s *CatalogService) ListHospitals() ([]models.HospitalRow, error) {
	rows := make([]models.HospitalRow, 0)
	err := s.DB.Model(&models.Hospital{}).
		Select("hospitals.*, COUNT(doctors.id) AS doctor_count").
		Joins("LEFT JOIN doctors ON doctors.hospital_id = hospitals.id").
		Group("hospitals.id").
		Order("hospitals.created_at DESC, hospitals.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *CatalogService) GetHospital(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	if err := s.DB.First(&hospital, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "hospital", ID: id}
		}
		return nil, err
	}
	return &hospital, nil
}

func (s *CatalogService) ListHospitalDoctors(hospitalID uint) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	err := s.DB.
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC, id DESC").
		Find(&doctors).Error
	return doctors, err
}

func (s *CatalogService) CreateHospital(hospital *models.Hospital) error {
	if hospital.Name == "" {
		return validationErrorf("hospital name is required")
	}
	if hospital.CreditLevel == "" {
		hospital.CreditLevel = "A"
	}
	return s.DB.Create(hospital).Error
}

func (s *CatalogService) UpdateHospital(id uint, hospital *models.Hospital) error {
	if hospital.Name == "" {
		return validationErrorf("hospital name is required")
	}

	result := s.DB.Model(&models.Hospital{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":         hospital.Name,
			"address":      hospital.Address,
			"level":        hospital.Level,
			"credit_level": hospital.CreditLevel,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "hospital", ID: id}
	}
	return nil
}

// DeleteHospital refuses to remove a hospital that still has doctors.
func (s *CatalogService) DeleteHospital(id uint) error {
	var doctorCount int64
	if err := s.DB.Model(&models.Doctor{}).Where("hospital_id = ?", id).Count(&doctorCount).Error; err != nil {
		return err
	}
	if doctorCount > 0 {
		return validationErrorf("hospital still has %d doctors and cannot be deleted", doctorCount)
	}

	result := s.DB.Delete(&models.Hospital{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "hospital", ID: id}
	}
	return nil
}

// ============ DOCTORS ============

func (s *CatalogService) ListDoctors() ([]models.DoctorRow, error) {
	rows := make([]models.DoctorRow, 0)
	err := s.DB.Model(&models.Doctor{}).
		Select("doctors.*, hospitals.name AS hospital_name").
		Joins("LEFT JOIN hospitals ON hospitals.id = doctors.hospital_id").
		Order("doctors.created_at DESC, doctors.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *CatalogService) GetDoctor(id uint) (*models.DoctorRow, error) {
	var row models.DoctorRow
	err := s.DB.Model(&models.Doctor{}).
		Select("doctors.*, hospitals.name AS hospital_name").
		Joins("LEFT JOIN hospitals ON hospitals.id = doctors.hospital_id").
		Where("doctors.id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "doctor", ID: id}
		}
		return nil, err
	}
	return &row, nil
}

func (s *CatalogService) CreateDoctor(doctor *models.Doctor) error {
	if doctor.Name == "" {
		return validationErrorf("doctor name is required")
	}
	if doctor.HospitalID == 0 {
		return validationErrorf("doctor hospital is required")
	}

	var count int64
	if err := s.DB.Model(&models.Hospital{}).Where("id = ?", doctor.HospitalID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: "hospital", ID: doctor.HospitalID}
	}

	return s.DB.Create(doctor).Error
}

func (s *CatalogService) UpdateDoctor(id uint, doctor *models.Doctor) error {
	if doctor.Name == "" {
		return validationErrorf("doctor name is required")
	}

	result := s.DB.Model(&models.Doctor{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":        doctor.Name,
			"hospital_id": doctor.HospitalID,
			"department":  doctor.Department,
			"position":    doctor.Position,
			"phone":       doctor.Phone,
			"wechat":      doctor.Wechat,
			"email":       doctor.Email,
			"notes":       doctor.Notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "doctor", ID: id}
	}
	return nil
}

func (s *CatalogService) DeleteDoctor(id uint) error {
	result := s.DB.Delete(&models.Doctor{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "doctor", ID: id}
	}
	return nil
}

// ============ EMPLOYEES ============

// ListEmployees returns employees newest-first with order count and total
// sales aggregated from their orders.
func (s *CatalogService) ListEmployees() ([]models.EmployeeRow, error) {
	rows := make([]models.EmployeeRow, 0)
	err := s.DB.Model(&models.Employee{}).
		Select("employees.*, COUNT(sales_orders.id) AS order_count, COALESCE(SUM(sales_orders.total_amount), 0) AS total_sales").
		Joins("LEFT JOIN sales_orders ON sales_orders.employee_id = employees.id").
		Group("employees.id").
		Order("employees.created_at DESC, employees.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *CatalogService) GetEmployee(id uint) (*models.Employee, error) {
	var employee models.Employee
	if err := s.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "employee", ID: id}
		}
		return nil, err
	}
	return &employee, nil
}

func (s *CatalogService) CreateEmployee(employee *models.Employee) error {
	if employee.Name == "" {
		return validationErrorf("employee name is required")
	}
	if employee.Role == "" {
		employee.Role = "salesperson"
	}
	return s.DB.Create(employee).Error
}

func (s *CatalogService) UpdateEmployee(id uint, employee *models.Employee) error {
	if employee.Name == "" {
		return validationErrorf("employee name is required")
	}

	result := s.DB.Model(&models.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":      employee.Name,
			"phone":     employee.Phone,
			"hire_date": employee.HireDate,
			"role":      employee.Role,
			"status":    employee.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}

// DeleteEmployee refuses to remove an employee that still has orders.
func (s *CatalogService) DeleteEmployee(id uint) error {
	var orderCount int64
	if err := s.DB.Model(&models.SalesOrder{}).Where("employee_id = ?", id).Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount > 0 {
		return validationErrorf("employee still has %d orders and cannot be deleted", orderCount)
	}

	result := s.DB.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "employee", ID: id}
	}
	return nil
}
