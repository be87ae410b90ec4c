package controller

import (
	"earlyledge_backend/internal/util"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError translates the service sentinel errors into HTTP
// responses. Anything unexpected is logged and reported as a 500.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPlanRequired):
		util.Error(ctx, http.StatusForbidden, "This feature requires the plus plan")
	case errors.Is(err, util.ErrChildLimitReached):
		util.Error(ctx, http.StatusForbidden, "Child profile limit reached for your plan")
	case errors.Is(err, util.ErrInvalidPlan):
		util.BadRequest(ctx, "Unknown plan")
	default:
		util.LogInternalError(ctx, err)
	}
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}
