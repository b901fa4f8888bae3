package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/insights"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// InsightsController handles the dashboard statistics endpoint.
type InsightsController struct {
	computeUseCase *insights.ComputeInsightsUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(computeUseCase *insights.ComputeInsightsUseCase) *InsightsController {
	return &InsightsController{computeUseCase: computeUseCase}
}

// Get handles GET /insights requests.
func (c *InsightsController) Get(ctx *gin.Context) {
	output, err := c.computeUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondStoreError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(output.Summary))
}
