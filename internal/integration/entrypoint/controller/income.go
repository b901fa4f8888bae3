package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/income"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase  *income.CreateIncomeUseCase
	listUseCase    *income.ListIncomeUseCase
	getUseCase     *income.GetIncomeUseCase
	updateUseCase  *income.UpdateIncomeUseCase
	archiveUseCase *income.ArchiveIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	listUseCase *income.ListIncomeUseCase,
	getUseCase *income.GetIncomeUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	archiveUseCase *income.ArchiveIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		archiveUseCase: archiveUseCase,
	}
}

// Create handles POST /income requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	occurredAt, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD", ""))
		return
	}

	input := income.CreateIncomeInput{
		Title:      req.Title,
		Amount:     req.Amount,
		SourceID:   req.SourceID,
		Source:     req.Source,
		Notes:      req.Notes,
		OccurredAt: occurredAt,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(dto.ToIncomeResponse(output.Income)))
}

// List handles GET /income requests.
func (c *IncomeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToIncomeListResponse(output.Income)))
}

// Get handles GET /income/:id requests.
func (c *IncomeController) Get(ctx *gin.Context) {
	input := income.GetIncomeInput{ID: ctx.Param("id")}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToIncomeResponse(output.Income)))
}

// Update handles PATCH /income/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error(), ""))
		return
	}

	occurredAt, err := dto.ParseDate(req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD", ""))
		return
	}

	input := income.UpdateIncomeInput{
		ID:         ctx.Param("id"),
		Title:      req.Title,
		Amount:     req.Amount,
		SourceID:   req.SourceID,
		Source:     req.Source,
		Notes:      req.Notes,
		OccurredAt: occurredAt,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(dto.ToIncomeResponse(output.Income)))
}

// Archive handles DELETE /income/:id requests.
func (c *IncomeController) Archive(ctx *gin.Context) {
	input := income.ArchiveIncomeInput{ID: ctx.Param("id")}

	if err := c.archiveUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleIncomeError maps income errors to HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incErr *domainerror.IncomeError
	if errors.As(err, &incErr) {
		statusCode := c.getStatusCodeForIncomeError(incErr.Code)
		ctx.JSON(statusCode, dto.Fail(incErr.Message, string(incErr.Code)))
		return
	}

	respondStoreError(ctx, err)
}

// getStatusCodeForIncomeError maps income error codes to HTTP status codes.
func (c *IncomeController) getStatusCodeForIncomeError(code domainerror.IncomeErrorCode) int {
	switch code {
	case domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeIncomeTitleRequired,
		domainerror.ErrCodeInvalidIncomeAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
