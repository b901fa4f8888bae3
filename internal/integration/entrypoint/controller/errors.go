package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
)

// respondStoreError handles failures that bubbled up from the document
// store. Anything unrecognized becomes a generic server error.
func respondStoreError(ctx *gin.Context, err error) {
	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		switch {
		case errors.Is(err, domainerror.ErrRecordNotFound):
			ctx.JSON(http.StatusNotFound, dto.Fail("Record not found", storeErr.Code))
		case errors.Is(err, domainerror.ErrStoreRateLimited):
			ctx.JSON(http.StatusTooManyRequests, dto.Fail("Record store is rate limiting requests", storeErr.Code))
		default:
			ctx.JSON(http.StatusBadGateway, dto.Fail("Record store is unavailable", storeErr.Code))
		}
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.Fail("An internal error occurred", ""))
}
