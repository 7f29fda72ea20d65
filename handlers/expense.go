package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MazaSebastian/crop-crm-sub000/models"
	"github.com/MazaSebastian/crop-crm-sub000/services/expense"
	"github.com/MazaSebastian/crop-crm-sub000/utils"
)

type ExpenseHandler struct {
	Service expense.ExpenseService
}

func NewExpenseHandler(svc expense.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: svc}
}

// ListExpensesHandler handles GET /api/expenses. Optional from/to query
// params filter by date range.
func (h *ExpenseHandler) ListExpensesHandler(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")

	var exps []models.Expense
	if from != "" && to != "" {
		exps = h.Service.ListByDateRange(c.Request.Context(), from, to)
	} else {
		exps = h.Service.List(c.Request.Context())
	}
	if exps == nil {
		exps = []models.Expense{}
	}
	c.JSON(http.StatusOK, exps)
}

// CreateExpenseHandler handles POST /api/expenses.
func (h *ExpenseHandler) CreateExpenseHandler(c *gin.Context) {
	var payload models.Expense
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := h.Service.Create(c.Request.Context(), payload)
	if created == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create expense"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateExpenseHandler handles PUT /api/expenses/:id.
func (h *ExpenseHandler) UpdateExpenseHandler(c *gin.Context) {
	var payload models.Expense
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.ID = c.Param("id")

	updated := h.Service.Update(c.Request.Context(), payload)
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not update expense"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteExpenseHandler handles DELETE /api/expenses/:id.
func (h *ExpenseHandler) DeleteExpenseHandler(c *gin.Context) {
	if !h.Service.Delete(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Could not delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// ExportExpensesHandler handles GET /api/expenses/export and streams the
// (optionally range-filtered) expenses as CSV.
func (h *ExpenseHandler) ExportExpensesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	from, to := c.Query("from"), c.Query("to")

	var exps []models.Expense
	if from != "" && to != "" {
		exps = h.Service.ListByDateRange(c.Request.Context(), from, to)
	} else {
		exps = h.Service.List(c.Request.Context())
	}

	filename := fmt.Sprintf("gastos-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"fecha", "categoria", "descripcion", "monto"})
	for _, e := range exps {
		if err := w.Write([]string{
			e.ExpenseDate,
			e.Category,
			e.Description,
			fmt.Sprintf("%.2f", e.Amount),
		}); err != nil {
			logger.Error("failed to write CSV row", zap.String("id", e.ID), zap.Error(err))
			return
		}
	}
	w.Flush()
}
