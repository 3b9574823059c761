package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pharma-sales-tracker/src/models"
	"pharma-sales-tracker/src/repositories"
)

// ============ REQUEST STRUCTS ============
type OrderItemRequest struct {
	MedicineID uint
	Quantity   int
	UnitPrice  decimal.Decimal
}

type CreateOrderRequest struct {
	HospitalID uint
	DoctorID   uint
	EmployeeID uint
	OrderDate  time.Time
	Notes      string
	Items      []OrderItemRequest
}

type CreateOrderResult struct {
	ID          uint   `json:"id"`
	OrderNumber string `json:"order_number"`
}

// OrderWithDetails is the full order view returned to callers.
type OrderWithDetails struct {
	models.OrderRow
	Details []models.OrderDetailRow `json:"details"`
}

// ============ ORDER SERVICE ============
type OrderService struct {
	DB        *gorm.DB
	Repo      *repositories.OrderRepository
	Inventory *repositories.InventoryRepository
}

// generateOrderNumber builds a time-derived order number: ORD + yyyymmdd +
// the last six digits of the unix millisecond clock. Uniqueness is enforced
// by the order_number constraint, not by this function.
func generateOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return "ORD" + now.Format("20060102") + millis[len(millis)-6:]
}

// CreateOrder - Validate, pre-check stock for every line, then atomically
// create the order, its lines, the stock decrements and one `out` movement
// per line. Any failure inside the transaction rolls back everything.
func (s *OrderService) CreateOrder(req CreateOrderRequest) (*CreateOrderResult, error) {
	if req.HospitalID == 0 || req.DoctorID == 0 || req.EmployeeID == 0 {
		return nil, validationErrorf("hospital, doctor and employee are required")
	}
	if len(req.Items) == 0 {
		return nil, validationErrorf("order needs at least one line item")
	}
	for _, item := range req.Items {
		if item.MedicineID == 0 {
			return nil, validationErrorf("line item medicine is required")
		}
		if item.Quantity <= 0 {
			return nil, validationErrorf("line item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, validationErrorf("line item unit price cannot be negative")
		}
	}

	if err := s.checkReferences(req); err != nil {
		return nil, err
	}

	// Pre-check phase: reject obviously short lines before opening the
	// transaction. The locked re-read inside the transaction is what
	// actually guarantees stock never goes negative under concurrency.
	for _, item := range req.Items {
		medicine, err := s.Inventory.GetMedicine(item.MedicineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &NotFoundError{Entity: "medicine", ID: item.MedicineID}
			}
			return nil, err
		}
		if medicine.StockQuantity < item.Quantity {
			return nil, &InsufficientStockError{
				MedicineID:   medicine.ID,
				MedicineName: medicine.Name,
				Current:      medicine.StockQuantity,
				Requested:    item.Quantity,
			}
		}
	}

	totalAmount := decimal.Zero
	for _, item := range req.Items {
		totalAmount = totalAmount.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	orderNumber := generateOrderNumber(time.Now())

	var orderID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order := &models.SalesOrder{
			OrderNumber:   orderNumber,
			HospitalID:    req.HospitalID,
			DoctorID:      req.DoctorID,
			EmployeeID:    req.EmployeeID,
			OrderDate:     req.OrderDate,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusUnpaid,
			TotalAmount:   totalAmount,
			Notes:         req.Notes,
		}
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			if isUniqueViolation(err) {
				return ErrOrderNumberConflict
			}
			return err
		}

		for _, item := range req.Items {
			detail := &models.OrderDetail{
				OrderID:    order.ID,
				MedicineID: item.MedicineID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				Subtotal:   item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
			}
			if err := s.Repo.CreateDetail(tx, detail); err != nil {
				return err
			}

			medicine, err := s.Inventory.GetMedicineForUpdate(tx, item.MedicineID)
			if err != nil {
				return err
			}
			if medicine.StockQuantity < item.Quantity {
				return &InsufficientStockError{
					MedicineID:   medicine.ID,
					MedicineName: medicine.Name,
					Current:      medicine.StockQuantity,
					Requested:    item.Quantity,
				}
			}
			if err := s.Inventory.UpdateStock(tx, item.MedicineID, medicine.StockQuantity-item.Quantity); err != nil {
				return err
			}

			refType := models.ReferenceOrder
			refID := order.ID
			movement := &models.InventoryMovement{
				MedicineID:    item.MedicineID,
				MovementType:  models.MovementTypeOut,
				Quantity:      item.Quantity,
				ReferenceType: &refType,
				ReferenceID:   &refID,
				Notes:         fmt.Sprintf("order dispatch %s", orderNumber),
			}
			if err := s.Inventory.AppendMovement(tx, movement); err != nil {
				return err
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("order %s created with %d lines, total %s", orderNumber, len(req.Items), totalAmount.StringFixed(2))

	return &CreateOrderResult{ID: orderID, OrderNumber: orderNumber}, nil
}

func (s *OrderService) checkReferences(req CreateOrderRequest) error {
	var count int64
	if err := s.DB.Model(&models.Hospital{}).Where("id = ?", req.HospitalID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: "hospital", ID: req.HospitalID}
	}
	if err := s.DB.Model(&models.Doctor{}).Where("id = ?", req.DoctorID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: "doctor", ID: req.DoctorID}
	}
	if err := s.DB.Model(&models.Employee{}).Where("id = ?", req.EmployeeID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: "employee", ID: req.EmployeeID}
	}
	return nil
}

// UpdateStatus - Partial update of status and payment_status. Transitions
// are unrestricted and never touch stock or the movement log.
func (s *OrderService) UpdateStatus(orderID uint, status, paymentStatus *string) error {
	if status != nil && !isValidOrderStatus(*status) {
		return validationErrorf("invalid order status %q", *status)
	}
	if paymentStatus != nil && !isValidPaymentStatus(*paymentStatus) {
		return validationErrorf("invalid payment status %q", *paymentStatus)
	}

	affected, err := s.Repo.UpdateStatus(orderID, status, paymentStatus)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Entity: "order", ID: orderID}
	}
	return nil
}

// DeleteOrder - Remove the order and its lines in one transaction. Stock
// decrements and movement entries from creation are left in place, so the
// movement log stays a faithful record of what was dispatched.
func (s *OrderService) DeleteOrder(orderID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.DeleteOrder(tx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &NotFoundError{Entity: "order", ID: orderID}
		}
		return nil
	})
}

// GetOrder - Full order view with joined names and line details
func (s *OrderService) GetOrder(orderID uint) (*OrderWithDetails, error) {
	row, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "order", ID: orderID}
		}
		return nil, err
	}

	details, err := s.Repo.GetOrderDetails(orderID)
	if err != nil {
		return nil, err
	}

	return &OrderWithDetails{OrderRow: *row, Details: details}, nil
}

// ListOrders - All orders newest-first
func (s *OrderService) ListOrders() ([]models.OrderRow, error) {
	return s.Repo.ListOrders()
}

// ListOrdersByEmployee - Orders placed by one employee
func (s *OrderService) ListOrdersByEmployee(employeeID uint) ([]models.OrderRow, error) {
	return s.Repo.ListOrdersByEmployee(employeeID)
}

func isValidOrderStatus(s string) bool {
	switch models.OrderStatus(s) {
	case models.OrderStatusPending, models.OrderStatusConfirmed, models.OrderStatusShipped,
		models.OrderStatusReceived, models.OrderStatusCompleted:
		return true
	default:
		return false
	}
}

func isValidPaymentStatus(s string) bool {
	switch models.PaymentStatus(s) {
	case models.PaymentStatusUnpaid, models.PaymentStatusPartial,
		models.PaymentStatusPaid, models.PaymentStatusAdvance:
		return true
	default:
		return false
	}
}
