package api

import (
	"net/http"
	"time"

	"github.com/finance-tracker/backend/models"
	"github.com/finance-tracker/backend/source"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	source source.Source
}

func NewHandler(s source.Source) *Handler {
	return &Handler{source: s}
}

// GetTransactions godoc
// @Summary List transactions
// @Description Returns the transactions of the configured source
// @Tags transactions
// @Produce json
// @Success 200 {array} models.Transaction
// @Failure 500 {object} models.ErrorResponse
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.source.GetTransactions(c.Request.Context())
	if err != nil {
		// logged by the request logger
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC(),
	})
}
