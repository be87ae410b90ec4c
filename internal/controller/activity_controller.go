package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// swagger:model ActivityRequest
type ActivityRequest struct {
	ChildID         uint   `json:"child_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Notes           string `json:"notes"`
	DurationMinutes *int   `json:"duration_minutes"`
	ActivityDate    string `json:"activity_date" binding:"required"`
	// SkillIDs omitted or empty triggers keyword auto-mapping.
	SkillIDs []uint `json:"skill_ids"`
}

func (r *ActivityRequest) input(ctx *gin.Context) (service.ActivityInput, bool) {
	date, err := time.ParseInLocation("2006-01-02", r.ActivityDate, time.Local)
	if err != nil {
		util.BadRequest(ctx, "activity_date must be YYYY-MM-DD")
		return service.ActivityInput{}, false
	}
	return service.ActivityInput{
		ChildID:         r.ChildID,
		Title:           r.Title,
		Notes:           r.Notes,
		DurationMinutes: r.DurationMinutes,
		ActivityDate:    date,
		SkillIDs:        r.SkillIDs,
	}, true
}

// Create godoc
// @Summary Log an activity
// @Description Without skill_ids the title and notes are keyword-classified.
// @Tags activities
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ActivityRequest true "Activity payload"
// @Success 201 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response "Child not found"
// @Router /api/activities [post]
func (c *ActivityController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	input, ok := req.input(ctx)
	if !ok {
		return
	}

	activity, err := c.ActivityService.Create(user.UserID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, activity)
}

// List godoc
// @Summary List activities
// @Description Newest first across all children, optionally one child, inside the plan's visibility window.
// @Tags activities
// @Produce  json
// @Security ApiKeyAuth
// @Param   child_id query int false "Restrict to one child"
// @Success 200 {object} util.Response{data=[]model.Activity}
// @Router /api/activities [get]
func (c *ActivityController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var childID *uint
	if raw := ctx.Query("child_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid child_id")
			return
		}
		id := uint(parsed)
		childID = &id
	}

	activities, err := c.ActivityService.List(user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, activities)
}

// Get godoc
// @Summary Fetch one activity
// @Tags activities
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Activity ID"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [get]
func (c *ActivityController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	activityID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	activity, err := c.ActivityService.Get(user.UserID, activityID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// Update godoc
// @Summary Edit an activity
// @Description Text edits keep the existing skill tags; sending skill_ids replaces them.
// @Tags activities
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Activity ID"
// @Param   body body ActivityRequest true "Activity payload"
// @Success 200 {object} util.Response{data=model.Activity}
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [put]
func (c *ActivityController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	activityID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var req ActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	input, ok := req.input(ctx)
	if !ok {
		return
	}

	activity, err := c.ActivityService.Update(user.UserID, activityID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, activity)
}

// Delete godoc
// @Summary Delete an activity
// @Tags activities
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Activity ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/activities/{id} [delete]
func (c *ActivityController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	activityID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ActivityService.Delete(user.UserID, activityID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
