package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)
	number := generateOrderNumber(now)

	assert.True(t, strings.HasPrefix(number, "ORD20250315"))
	assert.Len(t, number, 17)

	suffix := number[len(number)-6:]
	for _, r := range suffix {
		assert.True(t, r >= '0' && r <= '9', "suffix must be numeric")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	// Validation runs before any query, so no database is needed.
	service := &OrderService{}

	base := CreateOrderRequest{
		HospitalID: 1,
		DoctorID:   1,
		EmployeeID: 1,
		OrderDate:  time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []OrderItemRequest{
			{MedicineID: 1, Quantity: 5, UnitPrice: decimal.NewFromFloat(10.00)},
		},
	}

	t.Run("missing references", func(t *testing.T) {
		req := base
		req.HospitalID = 0
		_, err := service.CreateOrder(req)
		assertValidationError(t, err)
	})

	t.Run("empty line items", func(t *testing.T) {
		req := base
		req.Items = nil
		_, err := service.CreateOrder(req)
		assertValidationError(t, err)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		req := base
		req.Items = []OrderItemRequest{{MedicineID: 1, Quantity: 0, UnitPrice: decimal.NewFromFloat(10.00)}}
		_, err := service.CreateOrder(req)
		assertValidationError(t, err)
	})

	t.Run("negative unit price", func(t *testing.T) {
		req := base
		req.Items = []OrderItemRequest{{MedicineID: 1, Quantity: 1, UnitPrice: decimal.NewFromFloat(-1.00)}}
		_, err := service.CreateOrder(req)
		assertValidationError(t, err)
	})
}

func TestUpdateStatusValidation(t *testing.T) {
	service := &OrderService{}

	invalid := "cancelled"
	err := service.UpdateStatus(1, &invalid, nil)
	assertValidationError(t, err)

	invalidPayment := "refunded"
	err = service.UpdateStatus(1, nil, &invalidPayment)
	assertValidationError(t, err)
}

func TestAdjustInventoryValidation(t *testing.T) {
	service := &InventoryService{}

	t.Run("bad direction", func(t *testing.T) {
		_, err := service.AdjustInventory(AdjustInventoryRequest{
			MedicineID: 1, Direction: "sideways", Quantity: 5, Notes: "x",
		})
		assertValidationError(t, err)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := service.AdjustInventory(AdjustInventoryRequest{
			MedicineID: 1, Direction: "increase", Quantity: 0, Notes: "x",
		})
		assertValidationError(t, err)
	})

	t.Run("blank notes", func(t *testing.T) {
		_, err := service.AdjustInventory(AdjustInventoryRequest{
			MedicineID: 1, Direction: "increase", Quantity: 5, Notes: "   ",
		})
		assertValidationError(t, err)
	})
}

func TestRecordPurchaseValidation(t *testing.T) {
	service := &InventoryService{}

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := service.RecordPurchase(RecordPurchaseRequest{
			MedicineID: 1, SupplierName: "Acme", Quantity: 0,
			PurchaseDate: time.Now(),
		})
		assertValidationError(t, err)
	})

	t.Run("negative unit price", func(t *testing.T) {
		_, err := service.RecordPurchase(RecordPurchaseRequest{
			MedicineID: 1, SupplierName: "Acme", Quantity: 5,
			UnitPrice: decimal.NewFromFloat(-0.01), PurchaseDate: time.Now(),
		})
		assertValidationError(t, err)
	})

	t.Run("blank supplier", func(t *testing.T) {
		_, err := service.RecordPurchase(RecordPurchaseRequest{
			MedicineID: 1, SupplierName: "  ", Quantity: 5,
			PurchaseDate: time.Now(),
		})
		assertValidationError(t, err)
	})

	t.Run("zero purchase date", func(t *testing.T) {
		_, err := service.RecordPurchase(RecordPurchaseRequest{
			MedicineID: 1, SupplierName: "Acme", Quantity: 5,
		})
		assertValidationError(t, err)
	})
}

func TestErrorMessages(t *testing.T) {
	notFound := &NotFoundError{Entity: "medicine", ID: 42}
	assert.Equal(t, "medicine 42 not found", notFound.Error())

	insufficient := &InsufficientStockError{
		MedicineID: 3, MedicineName: "Amoxicillin", Current: 10, Requested: 25,
	}
	assert.Contains(t, insufficient.Error(), "insufficient stock")
	assert.Contains(t, insufficient.Error(), "current 10")
	assert.Contains(t, insufficient.Error(), "requested 25")
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}
