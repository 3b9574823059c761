package repositories

import (
	"gorm.io/gorm"

	"pharma-sales-tracker/src/models"
)

type OrderRepository struct {
	DB *gorm.DB
}

// CreateOrder - Insert the order header
func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *models.SalesOrder) error {
	return tx.Create(order).Error
}

// CreateDetail - Insert one order line
func (r *OrderRepository) CreateDetail(tx *gorm.DB, detail *models.OrderDetail) error {
	return tx.Create(detail).Error
}

// GetOrder - Order header joined with hospital/doctor/employee names
func (r *OrderRepository) GetOrder(orderID uint) (*models.OrderRow, error) {
	var row models.OrderRow
	err := r.DB.Model(&models.SalesOrder{}).
		Select(`sales_orders.*,
			hospitals.name AS hospital_name,
			doctors.name AS doctor_name,
			employees.name AS employee_name`).
		Joins("LEFT JOIN hospitals ON hospitals.id = sales_orders.hospital_id").
		Joins("LEFT JOIN doctors ON doctors.id = sales_orders.doctor_id").
		Joins("LEFT JOIN employees ON employees.id = sales_orders.employee_id").
		Where("sales_orders.id = ?", orderID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetOrderDetails - Lines for one order with medicine display fields
func (r *OrderRepository) GetOrderDetails(orderID uint) ([]models.OrderDetailRow, error) {
	rows := make([]models.OrderDetailRow, 0)

	err := r.DB.Model(&models.OrderDetail{}).
		Select("order_details.*, medicines.name AS medicine_name, medicines.specification").
		Joins("LEFT JOIN medicines ON medicines.id = order_details.medicine_id").
		Where("order_details.order_id = ?", orderID).
		Order("order_details.id ASC").
		Scan(&rows).Error

	return rows, err
}

// ListOrders - All orders newest-first with joined display names
func (r *OrderRepository) ListOrders() ([]models.OrderRow, error) {
	rows := make([]models.OrderRow, 0)

	err := r.DB.Model(&models.SalesOrder{}).
		Select(`sales_orders.*,
			hospitals.name AS hospital_name,
			doctors.name AS doctor_name,
			employees.name AS employee_name`).
		Joins("LEFT JOIN hospitals ON hospitals.id = sales_orders.hospital_id").
		Joins("LEFT JOIN doctors ON doctors.id = sales_orders.doctor_id").
		Joins("LEFT JOIN employees ON employees.id = sales_orders.employee_id").
		Order("sales_orders.created_at DESC, sales_orders.id DESC").
		Scan(&rows).Error

	return rows, err
}

// ListOrdersByEmployee - Orders placed by one employee, newest first
func (r *OrderRepository) ListOrdersByEmployee(employeeID uint) ([]models.OrderRow, error) {
	rows := make([]models.OrderRow, 0)

	err := r.DB.Model(&models.SalesOrder{}).
		Select(`sales_orders.*,
			hospitals.name AS hospital_name,
			doctors.name AS doctor_name,
			employees.name AS employee_name`).
		Joins("LEFT JOIN hospitals ON hospitals.id = sales_orders.hospital_id").
		Joins("LEFT JOIN doctors ON doctors.id = sales_orders.doctor_id").
		Joins("LEFT JOIN employees ON employees.id = sales_orders.employee_id").
		Where("sales_orders.employee_id = ?", employeeID).
		Order("sales_orders.created_at DESC, sales_orders.id DESC").
		Scan(&rows).Error

	return rows, err
}

// UpdateStatus - Partial status update; nil fields keep their value.
// Returns the number of affected rows so callers can detect a missing order.
func (r *OrderRepository) UpdateStatus(orderID uint, status, paymentStatus *string) (int64, error) {
	updates := map[string]interface{}{}
	if status != nil {
		updates["status"] = *status
	}
	if paymentStatus != nil {
		updates["payment_status"] = *paymentStatus
	}
	if len(updates) == 0 {
		// Nothing to change; still report whether the order exists.
		var count int64
		err := r.DB.Model(&models.SalesOrder{}).Where("id = ?", orderID).Count(&count).Error
		return count, err
	}

	result := r.DB.Model(&models.SalesOrder{}).
		Where("id = ?", orderID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOrder - Remove the order and its lines. Stock decrements and
// movement entries recorded at creation time stay untouched.
func (r *OrderRepository) DeleteOrder(tx *gorm.DB, orderID uint) (int64, error) {
	if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderDetail{}).Error; err != nil {
		return 0, err
	}

	result := tx.Delete(&models.SalesOrder{}, orderID)
	return result.RowsAffected, result.Error
}
