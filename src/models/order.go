package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ ENUMS & TYPES ============
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusCompleted OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusAdvance PaymentStatus = "advance"
)

// ============ SALES ORDER ============
type SalesOrder struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderNumber string `gorm:"type:varchar(50);uniqueIndex;not null" json:"order_number"`

	HospitalID uint `gorm:"not null;index" json:"hospital_id"`
	DoctorID   uint `gorm:"not null;index" json:"doctor_id"`
	EmployeeID uint `gorm:"not null;index" json:"employee_id"`

	OrderDate time.Time `gorm:"type:date" json:"order_date"`

	Status        OrderStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'unpaid'" json:"payment_status"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_amount"`
	Notes       string          `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SalesOrder) TableName() string {
	return "sales_orders"
}

// OrderRow joins the order with its hospital/doctor/employee display names.
type OrderRow struct {
	SalesOrder
	HospitalName string `json:"hospital_name"`
	DoctorName   string `json:"doctor_name"`
	EmployeeName string `json:"employee_name"`
}

// ============ ORDER DETAIL ============
// Created only as part of order creation, immutable thereafter.
type OrderDetail struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	OrderID    uint `gorm:"not null;index" json:"order_id"`
	MedicineID uint `gorm:"not null;index" json:"medicine_id"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

// OrderDetailRow adds the medicine display fields.
type OrderDetailRow struct {
	OrderDetail
	MedicineName  string `json:"medicine_name"`
	Specification string `json:"specification"`
}
