package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func TestUpdateStatusPartial(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &OrderRepository{DB: db}

	status := "shipped"

	mock.ExpectExec(`UPDATE "sales_orders" SET`).
		WithArgs(status, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(7, &status, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusBothFields(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &OrderRepository{DB: db}

	status := "completed"
	paymentStatus := "paid"

	// Map update columns are emitted in alphabetical order.
	mock.ExpectExec(`UPDATE "sales_orders" SET`).
		WithArgs(paymentStatus, status, sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.UpdateStatus(7, &status, &paymentStatus)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusNoFieldsReportsExistence(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &OrderRepository{DB: db}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "sales_orders"`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	affected, err := repo.UpdateStatus(7, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOrderRemovesLinesFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &OrderRepository{DB: db}

	mock.ExpectExec(`DELETE FROM "order_details"`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "sales_orders"`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.DeleteOrder(db, 9)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStockSetsAbsoluteValue(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &InventoryRepository{DB: db}

	mock.ExpectExec(`UPDATE "medicines" SET "stock_quantity"=`).
		WithArgs(150, sqlmock.AnyArg(), 3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateStock(db, 3, 150))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMovementsFiltersByMedicine(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := &InventoryRepository{DB: db}

	columns := []string{"id", "medicine_id", "movement_type", "quantity", "notes", "created_at", "medicine_name"}
	mock.ExpectQuery(`FROM "inventory_movements" LEFT JOIN medicines`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, 3, "out", 5, "order dispatch", time.Now(), "Amoxicillin").
			AddRow(1, 3, "in", 50, "purchase intake", time.Now(), "Amoxicillin"))

	medicineID := uint(3)
	rows, err := repo.ListMovements(&medicineID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Amoxicillin", rows[0].MedicineName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
