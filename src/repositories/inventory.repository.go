package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pharma-sales-tracker/src/models"
)

type InventoryRepository struct {
	DB *gorm.DB
}

// GetMedicine - Read a medicine including its current stock counter
func (r *InventoryRepository) GetMedicine(medicineID uint) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := r.DB.First(&medicine, medicineID).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

// GetMedicineForUpdate - Read a medicine with a row lock held for the
// duration of tx. Every stock mutation goes through this read so two
// concurrent writers serialize on the medicine row.
func (r *InventoryRepository) GetMedicineForUpdate(tx *gorm.DB, medicineID uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&medicine, medicineID).Error
	if err != nil {
		return nil, err
	}
	return &medicine, nil
}

// UpdateStock - Set the stock counter to an absolute value
func (r *InventoryRepository) UpdateStock(tx *gorm.DB, medicineID uint, newQuantity int) error {
	return tx.Model(&models.Medicine{}).
		Where("id = ?", medicineID).
		Update("stock_quantity", newQuantity).Error
}

// AppendMovement - Append one movement entry. The log is append-only:
// no update or delete path exists on purpose.
func (r *InventoryRepository) AppendMovement(tx *gorm.DB, movement *models.InventoryMovement) error {
	return tx.Create(movement).Error
}

// CreatePurchase - Insert a purchase record
func (r *InventoryRepository) CreatePurchase(tx *gorm.DB, purchase *models.PurchaseRecord) error {
	return tx.Create(purchase).Error
}

// ListMovements - All movement entries newest-first, joined with the
// medicine display name. medicineID narrows to a single medicine when set.
func (r *InventoryRepository) ListMovements(medicineID *uint) ([]models.MovementRow, error) {
	rows := make([]models.MovementRow, 0)

	query := r.DB.Model(&models.InventoryMovement{}).
		Select("inventory_movements.*, medicines.name AS medicine_name").
		Joins("LEFT JOIN medicines ON medicines.id = inventory_movements.medicine_id")

	if medicineID != nil {
		query = query.Where("inventory_movements.medicine_id = ?", *medicineID)
	}

	err := query.
		Order("inventory_movements.created_at DESC, inventory_movements.id DESC").
		Scan(&rows).Error

	return rows, err
}

// ListPurchases - All purchase records newest-first with medicine name
func (r *InventoryRepository) ListPurchases() ([]models.PurchaseRow, error) {
	rows := make([]models.PurchaseRow, 0)

	err := r.DB.Model(&models.PurchaseRecord{}).
		Select("purchase_records.*, medicines.name AS medicine_name").
		Joins("LEFT JOIN medicines ON medicines.id = purchase_records.medicine_id").
		Order("purchase_records.created_at DESC, purchase_records.id DESC").
		Scan(&rows).Error

	return rows, err
}

// ListPurchasesByMedicine - Purchase records for one medicine, newest first
func (r *InventoryRepository) ListPurchasesByMedicine(medicineID uint) ([]models.PurchaseRecord, error) {
	records := make([]models.PurchaseRecord, 0)

	err := r.DB.
		Where("medicine_id = ?", medicineID).
		Order("purchase_date DESC, id DESC").
		Find(&records).Error

	return records, err
}
