package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	PlanService *service.PlanService
}

func NewPlanController(planService *service.PlanService) *PlanController {
	return &PlanController{PlanService: planService}
}

// MyPlan godoc
// @Summary Current plan and its limits
// @Tags plan
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.PlanInfo}
// @Router /api/me/plan [get]
func (c *PlanController) MyPlan(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	info, err := c.PlanService.Info(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, info)
}

// swagger:model SetPlanRequest
type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// SetPlan godoc
// @Summary Set a user's plan (admin)
// @Tags plan
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "User ID"
// @Param   body body SetPlanRequest true "Target plan"
// @Success 200 {object} util.Response{data=model.Subscription}
// @Failure 400 {object} util.Response "Unknown plan"
// @Failure 403 {object} util.Response
// @Router /api/admin/users/{id}/plan [post]
func (c *PlanController) SetPlan(ctx *gin.Context) {
	userID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var req SetPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sub, err := c.PlanService.SetPlan(userID, req.Plan)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, sub)
}
