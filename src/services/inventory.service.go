package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pharma-sales-tracker/src/models"
	"pharma-sales-tracker/src/repositories"
)

// ============ REQUEST STRUCTS ============
type RecordPurchaseRequest struct {
	MedicineID   uint
	SupplierName string
	Quantity     int
	UnitPrice    decimal.Decimal
	PurchaseDate time.Time
	BatchNumber  string
	ExpiryDate   *time.Time
	Notes        string
}

type AdjustInventoryRequest struct {
	MedicineID uint
	Direction  string // increase | decrease
	Quantity   int
	Notes      string
}

type AdjustmentResult struct {
	OldStock int `json:"old_stock"`
	NewStock int `json:"new_stock"`
}

// ============ INVENTORY SERVICE ============
// InventoryService owns the two single-medicine mutating operations. Each
// one runs as a single transaction: stock update and movement append either
// both land or neither does.
type InventoryService struct {
	DB   *gorm.DB
	Repo *repositories.InventoryRepository
}

// RecordPurchase - Insert a purchase record, increment stock and append one
// `in` movement atomically. Returns the new purchase record id.
func (s *InventoryService) RecordPurchase(req RecordPurchaseRequest) (uint, error) {
	if req.Quantity <= 0 {
		return 0, validationErrorf("purchase quantity must be positive")
	}
	if req.UnitPrice.IsNegative() {
		return 0, validationErrorf("purchase price cannot be negative")
	}
	if strings.TrimSpace(req.SupplierName) == "" {
		return 0, validationErrorf("supplier name is required")
	}
	if req.PurchaseDate.IsZero() {
		return 0, validationErrorf("purchase date is required")
	}

	var purchaseID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		medicine, err := s.Repo.GetMedicineForUpdate(tx, req.MedicineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "medicine", ID: req.MedicineID}
			}
			return err
		}

		purchase := &models.PurchaseRecord{
			MedicineID:       req.MedicineID,
			SupplierName:     req.SupplierName,
			PurchaseQuantity: req.Quantity,
			PurchasePrice:    req.UnitPrice,
			TotalCost:        req.UnitPrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
			PurchaseDate:     req.PurchaseDate,
			BatchNumber:      req.BatchNumber,
			ExpiryDate:       req.ExpiryDate,
			Notes:            req.Notes,
		}
		if err := s.Repo.CreatePurchase(tx, purchase); err != nil {
			return err
		}

		if err := s.Repo.UpdateStock(tx, req.MedicineID, medicine.StockQuantity+req.Quantity); err != nil {
			return err
		}

		refType := models.ReferencePurchase
		refID := purchase.ID
		movement := &models.InventoryMovement{
			MedicineID:    req.MedicineID,
			MovementType:  models.MovementTypeIn,
			Quantity:      req.Quantity,
			ReferenceType: &refType,
			ReferenceID:   &refID,
			Notes:         fmt.Sprintf("purchase intake from %s", req.SupplierName),
		}
		if err := s.Repo.AppendMovement(tx, movement); err != nil {
			return err
		}

		purchaseID = purchase.ID
		return nil
	})

	return purchaseID, err
}

// AdjustInventory - Apply a manual correction with a mandatory justification.
// The negative-result check happens on the locked row before any write, so
// the operation never observes nor reports a negative stock value.
func (s *InventoryService) AdjustInventory(req AdjustInventoryRequest) (*AdjustmentResult, error) {
	if req.Direction != "increase" && req.Direction != "decrease" {
		return nil, validationErrorf("adjustment type must be increase or decrease")
	}
	if req.Quantity <= 0 {
		return nil, validationErrorf("adjustment quantity must be positive")
	}
	if strings.TrimSpace(req.Notes) == "" {
		return nil, validationErrorf("adjustment notes are required")
	}

	delta := req.Quantity
	movementType := models.MovementTypeIn
	if req.Direction == "decrease" {
		delta = -req.Quantity
		movementType = models.MovementTypeOut
	}

	var result *AdjustmentResult

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		medicine, err := s.Repo.GetMedicineForUpdate(tx, req.MedicineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "medicine", ID: req.MedicineID}
			}
			return err
		}

		newStock := medicine.StockQuantity + delta
		if newStock < 0 {
			return &InsufficientStockError{
				MedicineID:   medicine.ID,
				MedicineName: medicine.Name,
				Current:      medicine.StockQuantity,
				Requested:    req.Quantity,
			}
		}

		if err := s.Repo.UpdateStock(tx, req.MedicineID, newStock); err != nil {
			return err
		}

		refType := models.ReferenceAdjustment
		movement := &models.InventoryMovement{
			MedicineID:    req.MedicineID,
			MovementType:  movementType,
			Quantity:      req.Quantity,
			ReferenceType: &refType,
			Notes:         req.Notes,
		}
		if err := s.Repo.AppendMovement(tx, movement); err != nil {
			return err
		}

		result = &AdjustmentResult{
			OldStock: medicine.StockQuantity,
			NewStock: newStock,
		}
		return nil
	})

	return result, err
}

// ListMovements - Movement entries newest-first, optionally for one medicine
func (s *InventoryService) ListMovements(medicineID *uint) ([]models.MovementRow, error) {
	return s.Repo.ListMovements(medicineID)
}

// ListPurchases - Purchase records newest-first
func (s *InventoryService) ListPurchases() ([]models.PurchaseRow, error) {
	return s.Repo.ListPurchases()
}

// ListPurchasesByMedicine - Purchase records for one medicine
func (s *InventoryService) ListPurchasesByMedicine(medicineID uint) ([]models.PurchaseRecord, error) {
	return s.Repo.ListPurchasesByMedicine(medicineID)
}
