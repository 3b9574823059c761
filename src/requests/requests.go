package requests

import (
	"github.com/shopspring/decimal"
)

// ============ INVENTORY ============
type PurchaseRequest struct {
	MedicineID       uint            `json:"medicine_id" binding:"required"`
	SupplierName     string          `json:"supplier_name" binding:"required"`
	PurchaseQuantity int             `json:"purchase_quantity" binding:"required,min=1"`
	PurchasePrice    decimal.Decimal `json:"purchase_price"`
	PurchaseDate     string          `json:"purchase_date" binding:"required"`

	BatchNumber string  `json:"batch_number,omitempty"`
	ExpiryDate  *string `json:"expiry_date,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type AdjustmentRequest struct {
	MedicineID     uint   `json:"medicine_id" binding:"required"`
	AdjustmentType string `json:"adjustment_type" binding:"required,oneof=increase decrease"`
	Quantity       int    `json:"quantity" binding:"required,min=1"`
	Notes          string `json:"notes" binding:"required"`
}

// ============ ORDERS ============
type OrderItemRequest struct {
	MedicineID uint            `json:"medicine_id" binding:"required"`
	Quantity   int             `json:"quantity" binding:"required,min=1"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

type CreateOrderRequest struct {
	HospitalID uint               `json:"hospital_id" binding:"required"`
	DoctorID   uint               `json:"doctor_id" binding:"required"`
	EmployeeID uint               `json:"employee_id" binding:"required"`
	OrderDate  string             `json:"order_date" binding:"required"`
	Notes      string             `json:"notes,omitempty"`
	Details    []OrderItemRequest `json:"details" binding:"required,min=1,dive"`
}

type OrderStatusRequest struct {
	Status        *string `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed shipped received completed"`
	PaymentStatus *string `json:"payment_status,omitempty" binding:"omitempty,oneof=unpaid partial paid advance"`
}

// ============ CATALOG ============
type MedicineRequest struct {
	Name           string          `json:"name" binding:"required"`
	Specification  string          `json:"specification,omitempty"`
	Manufacturer   string          `json:"manufacturer,omitempty"`
	ApprovalNumber string          `json:"approval_number,omitempty"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SuggestedPrice decimal.Decimal `json:"suggested_price"`
	StockQuantity  int             `json:"stock_quantity"`
	SafetyStock    int             `json:"safety_stock"`
}

type HospitalRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address,omitempty"`
	Level       string `json:"level,omitempty"`
	CreditLevel string `json:"credit_level,omitempty"`
}

type DoctorRequest struct {
	Name       string `json:"name" binding:"required"`
	HospitalID uint   `json:"hospital_id" binding:"required"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Wechat     string `json:"wechat,omitempty"`
	Email      string `json:"email,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type EmployeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Phone    string  `json:"phone,omitempty"`
	HireDate *string `json:"hire_date,omitempty"`
	Role     string  `json:"role,omitempty"`
	Status   string  `json:"status,omitempty"`
}
