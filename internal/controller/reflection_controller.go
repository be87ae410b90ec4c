package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type ReflectionController struct {
	ReflectionService *service.ReflectionService
}

func NewReflectionController(reflectionService *service.ReflectionService) *ReflectionController {
	return &ReflectionController{ReflectionService: reflectionService}
}

// swagger:model ReflectionRequest
type ReflectionRequest struct {
	ChildID   uint   `json:"child_id" binding:"required"`
	EntryDate string `json:"entry_date" binding:"required"`
	Mood      string `json:"mood"`
	Note      string `json:"note" binding:"required"`
}

func (r *ReflectionRequest) input(ctx *gin.Context) (service.ReflectionInput, bool) {
	date, err := time.ParseInLocation("2006-01-02", r.EntryDate, time.Local)
	if err != nil {
		util.BadRequest(ctx, "entry_date must be YYYY-MM-DD")
		return service.ReflectionInput{}, false
	}
	return service.ReflectionInput{
		ChildID:   r.ChildID,
		EntryDate: date,
		Mood:      r.Mood,
		Note:      r.Note,
	}, true
}

// Create godoc
// @Summary Add a reflection note
// @Tags reflections
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ReflectionRequest true "Reflection payload"
// @Success 201 {object} util.Response{data=model.Reflection}
// @Failure 404 {object} util.Response "Child not found"
// @Router /api/reflections [post]
func (c *ReflectionController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	input, ok := req.input(ctx)
	if !ok {
		return
	}

	reflection, err := c.ReflectionService.Create(user.UserID, input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, reflection)
}

// Update godoc
// @Summary Edit a reflection note
// @Tags reflections
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Reflection ID"
// @Param   body body ReflectionRequest true "Reflection payload"
// @Success 200 {object} util.Response{data=model.Reflection}
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id} [put]
func (c *ReflectionController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ReflectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	input, ok := req.input(ctx)
	if !ok {
		return
	}

	reflection, err := c.ReflectionService.Update(user.UserID, ctx.Param("id"), input)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, reflection)
}

// Delete godoc
// @Summary Delete a reflection note
// @Tags reflections
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Reflection ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reflections/{id} [delete]
func (c *ReflectionController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.ReflectionService.Delete(user.UserID, ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListForChild godoc
// @Summary List a child's reflection notes
// @Tags reflections
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Success 200 {object} util.Response{data=[]model.Reflection}
// @Failure 404 {object} util.Response
// @Router /api/children/{id}/reflections [get]
func (c *ReflectionController) ListForChild(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	reflections, err := c.ReflectionService.ListForChild(user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, reflections)
}
