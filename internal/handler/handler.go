package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-api/internal/store"
)

// Handler holds the injected store and serves every resource. Debug controls
// whether 500 responses carry the underlying error detail.
type Handler struct {
	store *store.Store
	debug bool
}

func New(s *store.Store, debug bool) *Handler {
	return &Handler{store: s, debug: debug}
}

// respondError maps store error kinds to status codes. This is the only place
// the error taxonomy meets the transport.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidValue),
		errors.Is(err, store.ErrInvalidEnum),
		errors.Is(err, store.ErrConflict),
		errors.Is(err, store.ErrInactiveProduct),
		errors.Is(err, store.ErrAlreadyClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		msg := "internal server error"
		if h.debug {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func paginate(c *gin.Context) (offset, limit, page int) {
	page = 1
	limit = 20

	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return (page - 1) * limit, limit, page
}

func listResponse(c *gin.Context, data interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"data":  data,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}
