package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
}

func NewSuggestionController(suggestionService *service.SuggestionService) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService}
}

// List godoc
// @Summary Browse age-appropriate suggestions for a child
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Param   child_id query int true "Child ID"
// @Param   skill_id query int false "Restrict to one skill"
// @Success 200 {object} util.Response{data=[]model.SuggestionView}
// @Failure 404 {object} util.Response
// @Router /api/suggestions [get]
func (c *SuggestionController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	childID, ok := parseUintQuery(ctx, "child_id")
	if !ok {
		return
	}

	var skillID *uint
	if raw := ctx.Query("skill_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid skill_id")
			return
		}
		id := uint(parsed)
		skillID = &id
	}

	views, err := c.SuggestionService.List(user.UserID, childID, skillID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Daily godoc
// @Summary Today's three suggestion picks for a child
// @Description Random picks, stable for the rest of the day.
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Param   child_id query int true "Child ID"
// @Success 200 {object} util.Response{data=[]model.SuggestionView}
// @Failure 404 {object} util.Response
// @Router /api/suggestions/daily [get]
func (c *SuggestionController) Daily(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	childID, ok := parseUintQuery(ctx, "child_id")
	if !ok {
		return
	}

	views, err := c.SuggestionService.Daily(ctx.Request.Context(), user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

func parseUintQuery(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Query(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}
