package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-api/internal/models"
	"restaurant-api/internal/store"
)

type CreateOrderLineRequest struct {
	OrderID   uint            `json:"order_id" binding:"required"`
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
}

// ListOrderLines serves GET /orders/:id/lines.
func (h *Handler) ListOrderLines(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	lines, err := h.store.ListOrderLines(uint(orderID))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *Handler) GetOrderLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	line, err := h.store.GetOrderLine(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (h *Handler) CreateOrderLine(c *gin.Context) {
	var req CreateOrderLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line := models.OrderLine{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Status:    req.Status,
	}
	if err := h.store.CreateOrderLine(&line); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (h *Handler) UpdateOrderLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch store.OrderLinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := h.store.UpdateOrderLine(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (h *Handler) DeleteOrderLine(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteOrderLine(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order line deleted successfully"})
}
