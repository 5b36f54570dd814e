package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/models"
	"restaurant-api/internal/store"
)

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required"`
	Capacity int    `json:"capacity" binding:"required"`
	Status   string `json:"status"`
}

func (h *Handler) ListTables(c *gin.Context) {
	offset, limit, page := paginate(c)

	tables, total, err := h.store.ListTables(offset, limit, c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	listResponse(c, tables, total, page, limit)
}

func (h *Handler) GetTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	table, err := h.store.GetTable(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table := models.Table{
		Number:   req.Number,
		Capacity: req.Capacity,
		Status:   req.Status,
	}
	if err := h.store.CreateTable(&table); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, table)
}

func (h *Handler) UpdateTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch store.TablePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	table, err := h.store.UpdateTable(id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, table)
}

func (h *Handler) DeleteTable(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteTable(id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Table deleted successfully"})
}
