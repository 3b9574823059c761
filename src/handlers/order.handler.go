package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharma-sales-tracker/src/requests"
	"pharma-sales-tracker/src/services"
)

type OrderHandler struct {
	Service *services.OrderService
}

// GetOrders - All orders newest-first, optionally filtered by employee
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.Service.ListOrders()
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": orders})
}

// GetOrder - One order with its detail lines
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.Service.GetOrder(id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": order})
}

// CreateOrder - Create a sales order and dispatch its stock atomically
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req requests.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	orderDate, err := parseDate(req.OrderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order_date format. Use YYYY-MM-DD or RFC3339"})
		return
	}

	items := make([]services.OrderItemRequest, 0, len(req.Details))
	for _, detail := range req.Details {
		items = append(items, services.OrderItemRequest{
			MedicineID: detail.MedicineID,
			Quantity:   detail.Quantity,
			UnitPrice:  detail.UnitPrice,
		})
	}

	result, err := h.Service.CreateOrder(services.CreateOrderRequest{
		HospitalID: req.HospitalID,
		DoctorID:   req.DoctorID,
		EmployeeID: req.EmployeeID,
		OrderDate:  orderDate,
		Notes:      req.Notes,
		Items:      items,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created successfully",
		"id":           result.ID,
		"order_number": result.OrderNumber,
	})
}

// UpdateOrderStatus - Partial update of order status and payment status
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req requests.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.UpdateStatus(id, req.Status, req.PaymentStatus); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully"})
}

// DeleteOrder - Remove an order and its lines. Stock is not restored.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.Service.DeleteOrder(id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
