package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/billscan/receipt-analyzer/dto"
	"github.com/billscan/receipt-analyzer/service"
)

type TransactionHandler struct {
	analyticsService *service.AnalyticsService
}

func NewTransactionHandler(analyticsService *service.AnalyticsService) *TransactionHandler {
	return &TransactionHandler{
		analyticsService: analyticsService,
	}
}

// List handles GET /transactions/
func (h *TransactionHandler) List(c *gin.Context) {
	records, err := h.analyticsService.ListTransactions()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to list transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionsResponse{Transactions: records, Count: len(records)})
}

// Sorted handles GET /transactions/sorted/?sort_by=amount&order=desc
func (h *TransactionHandler) Sorted(c *gin.Context) {
	sortBy := c.DefaultQuery("sort_by", "date")
	descending := strings.EqualFold(c.DefaultQuery("order", "asc"), "desc")

	records, err := h.analyticsService.Sorted(sortBy, descending)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid sort request", err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionsResponse{Transactions: records, Count: len(records)})
}

// Search handles GET /transactions/search/ with one of four criteria:
// keyword (+fields), field+pattern, field+min/max, or field+value.
func (h *TransactionHandler) Search(c *gin.Context) {
	var (
		records []dto.TransactionRecord
		err     error
	)

	switch {
	case c.Query("keyword") != "":
		var fields []string
		if raw := c.Query("fields"); raw != "" {
			fields = strings.Split(raw, ",")
		}
		records, err = h.analyticsService.KeywordSearch(c.Query("keyword"), fields)

	case c.Query("pattern") != "":
		records, err = h.analyticsService.PatternSearch(c.Query("field"), c.Query("pattern"))

	case c.Query("min") != "" || c.Query("max") != "":
		var min, max *float64
		if min, err = parseBound(c.Query("min")); err == nil {
			max, err = parseBound(c.Query("max"))
		}
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Invalid range bound", err)
			return
		}
		records, err = h.analyticsService.RangeSearch(c.DefaultQuery("field", "amount"), min, max)

	case c.Query("value") != "":
		records, err = h.analyticsService.ExactSearch(c.Query("field"), c.Query("value"))

	default:
		h.sendError(c, http.StatusBadRequest, "No search criteria provided", nil)
		return
	}

	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Search failed", err)
		return
	}
	c.JSON(http.StatusOK, dto.TransactionsResponse{Transactions: records, Count: len(records)})
}

// Stats handles GET /transactions/stats/
func (h *TransactionHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.Stats()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to compute statistics", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Reclassify handles POST /transactions/reclassify
func (h *TransactionHandler) Reclassify(c *gin.Context) {
	updated, total, err := h.analyticsService.Reclassify()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to reclassify transactions", err)
		return
	}
	c.JSON(http.StatusOK, dto.ReclassifyResponse{
		Updated: updated,
		Total:   total,
		Message: "Reclassification complete.",
	})
}

func parseBound(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &val, nil
}

// sendError sends a structured error response
func (h *TransactionHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		logrus.WithError(err).Error(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "QUERY_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
