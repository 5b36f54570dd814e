package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"restaurant-api/internal/models"
	"restaurant-api/internal/store"
)

type OrderLineRequest struct {
	ProductID uint            `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Status    string          `json:"status"`
}

type CreateOrderRequest struct {
	TableID  uint               `json:"table_id" binding:"required"`
	WaiterID uint               `json:"waiter_id" binding:"required"`
	Comments string             `json:"comments"`
	Lines    []OrderLineRequest `json:"lines"`
}

type CloseOrderRequest struct {
	Comments *string `json:"comments"`
}

func (h *Handler) ListOrders(c *gin.Context) {
	offset, limit, page := paginate(c)

	var tableID *uint
	if v := c.Query("table_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid table_id"})
			return
		}
		id := uint(n)
		tableID = &id
	}

	orders, total, err := h.store.ListOrders(offset, limit, tableID, c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	listResponse(c, orders, total, page, limit)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.store.GetOrder(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order := models.Order{
		TableID:  req.TableID,
		WaiterID: req.WaiterID,
		Comments: req.Comments,
	}
	lines := make([]models.OrderLine, len(req.Lines))
	for i, lr := range req.Lines {
		lines[i] = models.OrderLine{
			ProductID: lr.ProductID,
			Quantity:  lr.Quantity,
			UnitPrice: lr.UnitPrice,
			Status:    lr.Status,
		}
	}

	if err := h.store.CreateOrder(&order, lines); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch store.OrderPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.store.UpdateOrder(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) CloseOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CloseOrderRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	order, err := h.store.CloseOrder(id, req.Comments)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteOrder(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
