package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ MEDICINE ============
// Medicine owns its current StockQuantity as the single source of truth.
// Movements are an audit trail kept consistent with it by construction,
// never summed backward to derive it.
type Medicine struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name           string `gorm:"type:varchar(200);not null" json:"name"`
	Specification  string `gorm:"type:varchar(200)" json:"specification"`
	Manufacturer   string `gorm:"type:varchar(200)" json:"manufacturer"`
	ApprovalNumber string `gorm:"type:varchar(100)" json:"approval_number"`

	CostPrice      decimal.Decimal `gorm:"type:decimal(10,2)" json:"cost_price"`
	SuggestedPrice decimal.Decimal `gorm:"type:decimal(10,2)" json:"suggested_price"`

	StockQuantity int `gorm:"not null;default:0" json:"stock_quantity"`
	SafetyStock   int `gorm:"not null;default:0" json:"safety_stock"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Medicine) TableName() string {
	return "medicines"
}

// ============ HOSPITAL ============
type Hospital struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Address     string `gorm:"type:varchar(300)" json:"address"`
	Level       string `gorm:"type:varchar(50)" json:"level"`
	CreditLevel string `gorm:"type:varchar(10);default:'A'" json:"credit_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalRow adds the doctor headcount for listings.
type HospitalRow struct {
	Hospital
	DoctorCount int `json:"doctor_count"`
}

// ============ DOCTOR ============
type Doctor struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name       string `gorm:"type:varchar(100);not null" json:"name"`
	HospitalID uint   `gorm:"not null;index" json:"hospital_id"`
	Department string `gorm:"type:varchar(100)" json:"department"`
	Position   string `gorm:"type:varchar(100)" json:"position"`
	Phone      string `gorm:"type:varchar(50)" json:"phone"`
	Wechat     string `gorm:"type:varchar(100)" json:"wechat"`
	Email      string `gorm:"type:varchar(200)" json:"email"`
	Notes      string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DoctorRow adds the hospital display name for listings.
type DoctorRow struct {
	Doctor
	HospitalName string `json:"hospital_name"`
}

// ============ EMPLOYEE ============
type Employee struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Name     string     `gorm:"type:varchar(100);not null" json:"name"`
	Phone    string     `gorm:"type:varchar(50)" json:"phone"`
	HireDate *time.Time `gorm:"type:date" json:"hire_date"`
	Role     string     `gorm:"type:varchar(50);default:'salesperson'" json:"role"`
	Status   string     `gorm:"type:varchar(20);default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// EmployeeRow adds order aggregates for listings.
type EmployeeRow struct {
	Employee
	OrderCount int             `json:"order_count"`
	TotalSales decimal.Decimal `json:"total_sales"`
}
