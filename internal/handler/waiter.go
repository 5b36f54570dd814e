package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/models"
	"restaurant-api/internal/store"
)

type CreateWaiterRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	HireDate string `json:"hire_date"` // YYYY-MM-DD, defaults to today
}

func (h *Handler) ListWaiters(c *gin.Context) {
	offset, limit, page := paginate(c)

	waiters, total, err := h.store.ListWaiters(offset, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	listResponse(c, waiters, total, page, limit)
}

func (h *Handler) GetWaiter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	waiter, err := h.store.GetWaiter(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, waiter)
}

func (h *Handler) CreateWaiter(c *gin.Context) {
	var req CreateWaiterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	waiter := models.Waiter{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hire_date must be YYYY-MM-DD"})
			return
		}
		waiter.HireDate = hireDate
	}

	if err := h.store.CreateWaiter(&waiter); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, waiter)
}

func (h *Handler) UpdateWaiter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch store.WaiterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	waiter, err := h.store.UpdateWaiter(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, waiter)
}

func (h *Handler) DeleteWaiter(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteWaiter(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Waiter deleted successfully"})
}
