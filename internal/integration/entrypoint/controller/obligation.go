package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/obligation"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// ObligationController handles debt and loan endpoints. One instance serves
// both record kinds; the kind is fixed at construction so the same handler
// set mounts under /debts and /loans.
type ObligationController struct {
	kind           entity.ObligationKind
	createUseCase  *obligation.CreateObligationUseCase
	listUseCase    *obligation.ListObligationsUseCase
	getUseCase     *obligation.GetObligationUseCase
	updateUseCase  *obligation.UpdateObligationUseCase
	paymentUseCase *obligation.RecordPaymentUseCase
	archiveUseCase *obligation.ArchiveObligationUseCase
}

// NewObligationController creates a new obligation controller instance for
// the given record kind.
func NewObligationController(
	kind entity.ObligationKind,
	createUseCase *obligation.CreateObligationUseCase,
	listUseCase *obligation.ListObligationsUseCase,
	getUseCase *obligation.GetObligationUseCase,
	updateUseCase *obligation.UpdateObligationUseCase,
	paymentUseCase *obligation.RecordPaymentUseCase,
	archiveUseCase *obligation.ArchiveObligationUseCase,
) *ObligationController {
	return &ObligationController{
		kind:           kind,
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		paymentUseCase: paymentUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// Create handles POST /debts and POST /loans requests.
func (c *ObligationController) Create(ctx *gin.Context) {
	var req dto.CreateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid due date format. Use YYYY-MM-DD", ""))
		return
	}

	input := obligation.CreateObligationInput{
		Kind:    c.kind,
		Title:   req.Title,
		Total:   req.Total,
		Paid:    req.Paid,
		DueDate: dueDate,
		Purpose: req.Purpose,
		Status:  entity.ObligationStatus(req.Status),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToObligationResponse(output.Obligation)))
}

// List handles GET /debts and GET /loans requests. The activeOnly query
// parameter filters out fully settled records.
func (c *ObligationController) List(ctx *gin.Context) {
	input := obligation.ListObligationsInput{
		Kind:       c.kind,
		ActiveOnly: ctx.Query("activeOnly") == "true",
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToObligationListResponse(output.Obligations)))
}

// Get handles GET /debts/:id and GET /loans/:id requests.
func (c *ObligationController) Get(ctx *gin.Context) {
	input := obligation.GetObligationInput{Kind: c.kind, ID: ctx.Param("id")}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToObligationResponse(output.Obligation)))
}

// Update handles PATCH /debts/:id and PATCH /loans/:id requests.
func (c *ObligationController) Update(ctx *gin.Context) {
	var req dto.UpdateObligationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	dueDate, err := dto.ParseDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid due date format. Use YYYY-MM-DD", ""))
		return
	}

	input := obligation.UpdateObligationInput{
		Kind:    c.kind,
		ID:      ctx.Param("id"),
		Title:   req.Title,
		Total:   req.Total,
		Paid:    req.Paid,
		DueDate: dueDate,
		Purpose: req.Purpose,
		Status:  entity.ObligationStatus(req.Status),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToObligationResponse(output.Obligation)))
}

// RecordPayment handles POST /debts/:id/payments and POST /loans/:id/payments
// requests.
func (c *ObligationController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	input := obligation.RecordPaymentInput{
		Kind:   c.kind,
		ID:     ctx.Param("id"),
		Amount: req.Amount,
	}

	output, err := c.paymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToObligationResponse(output.Obligation)))
}

// Archive handles DELETE /debts/:id and DELETE /loans/:id requests.
func (c *ObligationController) Archive(ctx *gin.Context) {
	input := obligation.ArchiveObligationInput{Kind: c.kind, ID: ctx.Param("id")}

	if err := c.archiveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleObligationError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleObligationError maps obligation errors to HTTP responses.
func (c *ObligationController) handleObligationError(ctx *gin.Context, err error) {
	var oblErr *domainerror.ObligationError
	if errors.As(err, &oblErr) {
		statusCode := c.getStatusCodeForObligationError(oblErr.Code)
		ctx.JSON(statusCode, dto.Fail(oblErr.Message, string(oblErr.Code)))
		return
	}

	respondStoreError(ctx, err)
}

// getStatusCodeForObligationError maps obligation error codes to HTTP
// status codes.
func (c *ObligationController) getStatusCodeForObligationError(code domainerror.ObligationErrorCode) int {
	switch code {
	case domainerror.ErrCodeObligationNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeObligationSettled:
		return http.StatusConflict
	case domainerror.ErrCodeObligationTitleRequired,
		domainerror.ErrCodeInvalidObligationTotal,
		domainerror.ErrCodeInvalidPaidAmount,
		domainerror.ErrCodeInvalidPaymentDelta:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
