package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ ENUMS & TYPES ============
type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

type ReferenceType string

const (
	ReferencePurchase   ReferenceType = "purchase"
	ReferenceOrder      ReferenceType = "order"
	ReferenceAdjustment ReferenceType = "adjustment"
)

// ============ MOVEMENT LOG ============
// InventoryMovement is append-only: rows are never updated or deleted once
// written. Direction is carried by MovementType, Quantity stays positive.
type InventoryMovement struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	MedicineID uint `gorm:"not null;index" json:"medicine_id"`

	MovementType MovementType `gorm:"type:varchar(12);not null" json:"movement_type"`
	Quantity     int          `gorm:"not null" json:"quantity"`

	// Reference tracking
	ReferenceType *ReferenceType `gorm:"type:varchar(20)" json:"reference_type"`
	ReferenceID   *uint          `gorm:"index" json:"reference_id"`

	Notes string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (InventoryMovement) TableName() string {
	return "inventory_movements"
}

// MovementRow is an InventoryMovement joined with the medicine display name
// for presentation.
type MovementRow struct {
	InventoryMovement
	MedicineName string `json:"medicine_name"`
}

// ============ PURCHASE RECORD ============
type PurchaseRecord struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	MedicineID uint `gorm:"not null;index" json:"medicine_id"`

	SupplierName     string          `gorm:"type:varchar(200);not null" json:"supplier_name"`
	PurchaseQuantity int             `gorm:"not null" json:"purchase_quantity"`
	PurchasePrice    decimal.Decimal `gorm:"type:decimal(10,2)" json:"purchase_price"`
	TotalCost        decimal.Decimal `gorm:"type:decimal(10,2)" json:"total_cost"`
	PurchaseDate     time.Time       `gorm:"type:date;not null" json:"purchase_date"`

	BatchNumber string     `gorm:"type:varchar(100)" json:"batch_number"`
	ExpiryDate  *time.Time `gorm:"type:date" json:"expiry_date"`
	Notes       string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (PurchaseRecord) TableName() string {
	return "purchase_records"
}

// PurchaseRow is a PurchaseRecord joined with the medicine display name.
type PurchaseRow struct {
	PurchaseRecord
	MedicineName string `json:"medicine_name"`
}
