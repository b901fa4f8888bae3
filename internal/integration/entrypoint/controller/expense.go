// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/expense"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	getUseCase     *expense.GetExpenseUseCase
	updateUseCase  *expense.UpdateExpenseUseCase
	archiveUseCase *expense.ArchiveExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	archiveUseCase *expense.ArchiveExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	occurredAt, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD", ""))
		return
	}

	input := expense.CreateExpenseInput{
		Title:         req.Title,
		Subtotal:      req.Subtotal,
		Shipping:      req.Shipping,
		ServiceFee:    req.ServiceFee,
		AdditionalFee: req.AdditionalFee,
		Discount:      req.Discount,
		CategoryID:    req.CategoryID,
		Notes:         req.Notes,
		OccurredAt:    occurredAt,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToExpenseResponse(output.Expense)))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToExpenseListResponse(output.Expenses)))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	input := expense.GetExpenseInput{ID: ctx.Param("id")}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(output.Expense)))
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	occurredAt, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD", ""))
		return
	}

	input := expense.UpdateExpenseInput{
		ID:            ctx.Param("id"),
		Title:         req.Title,
		Subtotal:      req.Subtotal,
		Shipping:      req.Shipping,
		ServiceFee:    req.ServiceFee,
		AdditionalFee: req.AdditionalFee,
		Discount:      req.Discount,
		CategoryID:    req.CategoryID,
		Notes:         req.Notes,
		OccurredAt:    occurredAt,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(output.Expense)))
}

// Archive handles DELETE /expenses/:id requests.
func (c *ExpenseController) Archive(ctx *gin.Context) {
	input := expense.ArchiveExpenseInput{ID: ctx.Param("id")}

	if err := c.archiveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError maps expense errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.Fail(expErr.Message, string(expErr.Code)))
		return
	}

	respondStoreError(ctx, err)
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeExpenseTitleRequired,
		domainerror.ErrCodeInvalidExpenseTotal,
		domainerror.ErrCodeNegativeExpenseComponent:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
