package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/dto"
	"github.com/fintrackr/personal_finance_app/internal/middleware"
)

// expenseHandler handles HTTP requests related to daily expenses.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvc
}

// expenseListQuery accepts either a month filter or an explicit date range.
type expenseListQuery struct {
	Month string     `form:"month" binding:"omitempty,monthkey"`
	From  *time.Time `form:"from" time_format:"2006-01-02"`
	To    *time.Time `form:"to" time_format:"2006-01-02"`
}

// RegisterExpenseRoutes registers routes related to expenses.
func RegisterExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvc) {
	h := &expenseHandler{expenseService: expenseService}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:id", h.getExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.POST("/:id/duplicate", h.duplicateExpense)
	}
}

func (h *expenseHandler) createExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expense created", slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) listExpenses(c *gin.Context) {
	var q expenseListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	switch {
	case q.Month != "":
		expenses, err := h.expenseService.ListExpensesByMonth(c.Request.Context(), q.Month)
		if err != nil {
			respondError(c, err, "Failed to list expenses")
			return
		}
		c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
	case q.From != nil && q.To != nil:
		expenses, err := h.expenseService.ListExpensesByDateRange(c.Request.Context(), *q.From, *q.To)
		if err != nil {
			respondError(c, err, "Failed to list expenses")
			return
		}
		c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
	default:
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		expenses, err := h.expenseService.ListExpenses(c.Request.Context(), limit, offset)
		if err != nil {
			respondError(c, err, "Failed to list expenses")
			return
		}
		c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
	}
}

func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseService.GetExpenseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) updateExpense(c *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *expenseHandler) deleteExpense(c *gin.Context) {
	if err := h.expenseService.DeleteExpense(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *expenseHandler) duplicateExpense(c *gin.Context) {
	expense, err := h.expenseService.DuplicateExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to duplicate expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}
