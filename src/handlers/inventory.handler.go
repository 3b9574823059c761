package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pharma-sales-tracker/src/requests"
	"pharma-sales-tracker/src/services"
)

type InventoryHandler struct {
	Service *services.InventoryService
}

// RecordPurchase - Record an incoming supplier purchase
func (h *InventoryHandler) RecordPurchase(c *gin.Context) {
	var req requests.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchase_date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	var expiryDate *time.Time
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		parsed, err := parseDate(*req.ExpiryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expiry_date format. Use YYYY-MM-DD or RFC3339"})
			return
		}
		expiryDate = &parsed
	}

	purchaseID, err := h.Service.RecordPurchase(services.RecordPurchaseRequest{
		MedicineID:   req.MedicineID,
		SupplierName: req.SupplierName,
		Quantity:     req.PurchaseQuantity,
		UnitPrice:    req.PurchasePrice,
		PurchaseDate: purchaseDate,
		BatchNumber:  req.BatchNumber,
		ExpiryDate:   expiryDate,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Purchase recorded successfully",
		"id":      purchaseID,
	})
}

// AdjustInventory - Apply a manual stock correction
func (h *InventoryHandler) AdjustInventory(c *gin.Context) {
	var req requests.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Service.AdjustInventory(services.AdjustInventoryRequest{
		MedicineID: req.MedicineID,
		Direction:  req.AdjustmentType,
		Quantity:   req.Quantity,
		Notes:      req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Inventory adjusted successfully",
		"old_stock": result.OldStock,
		"new_stock": result.NewStock,
	})
}

// GetMovements - Movement entries newest-first, optionally for one medicine
func (h *InventoryHandler) GetMovements(c *gin.Context) {
	var medicineID *uint
	if raw := c.Query("medicine_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicine_id"})
			return
		}
		id := uint(parsed)
		medicineID = &id
	}

	movements, err := h.Service.ListMovements(medicineID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movements)
}

// GetMedicineMovements - Movement entries for one medicine, newest-first
func (h *InventoryHandler) GetMedicineMovements(c *gin.Context) {
	parsed, err := strconv.ParseUint(c.Param("medicine_id"), 10, 32)
	if err != nil || parsed == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid medicine_id"})
		return
	}
	medicineID := uint(parsed)

	movements, err := h.Service.ListMovements(&medicineID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, movements)
}

// GetPurchases - Purchase records newest-first
func (h *InventoryHandler) GetPurchases(c *gin.Context) {
	purchases, err := h.Service.ListPurchases()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, purchases)
}
