package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalysisController struct {
	AnalysisService *service.AnalysisService
}

func NewAnalysisController(analysisService *service.AnalysisService) *AnalysisController {
	return &AnalysisController{AnalysisService: analysisService}
}

// SkillAnalysis godoc
// @Summary 14-day skill analysis with ranked suggestions
// @Description Plus feature. Partitions the catalog into rich and missing skills and ranks age-appropriate suggestions, missing skills first.
// @Tags analysis
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Success 200 {object} util.Response{data=model.SkillAnalysis}
// @Failure 403 {object} util.Response "Requires the plus plan"
// @Failure 404 {object} util.Response
// @Router /api/children/{id}/skill-analysis [get]
func (c *AnalysisController) SkillAnalysis(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	analysis, err := c.AnalysisService.Analyze(user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, analysis)
}
