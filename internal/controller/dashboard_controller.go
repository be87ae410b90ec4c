package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Weekly godoc
// @Summary Weekly dashboard for one child
// @Description Rolling 7-day window: activity count, per-skill counts with zeros, missing skills, recent entries.
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Success 200 {object} util.Response{data=model.WeeklyDashboard}
// @Failure 404 {object} util.Response
// @Router /api/children/{id}/dashboard [get]
func (c *DashboardController) Weekly(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.Weekly(user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
