package controller

import (
	"earlyledge_backend/internal/model"
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type ChildController struct {
	ChildService *service.ChildService
}

func NewChildController(childService *service.ChildService) *ChildController {
	return &ChildController{ChildService: childService}
}

// swagger:model ChildRequest
type ChildRequest struct {
	Name        string `json:"name" binding:"required"`
	DateOfBirth string `json:"date_of_birth"`
}

func (r *ChildRequest) dob(ctx *gin.Context) (*time.Time, bool) {
	if r.DateOfBirth == "" {
		return nil, true
	}
	d, err := time.ParseInLocation("2006-01-02", r.DateOfBirth, time.Local)
	if err != nil {
		util.BadRequest(ctx, "date_of_birth must be YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

// Create godoc
// @Summary Add a child profile
// @Tags children
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ChildRequest true "Child payload"
// @Success 201 {object} util.Response{data=model.Child}
// @Failure 403 {object} util.Response "Plan child limit reached"
// @Router /api/children [post]
func (c *ChildController) Create(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	dob, ok := req.dob(ctx)
	if !ok {
		return
	}

	child := &model.Child{Name: req.Name, DateOfBirth: dob}
	if err := c.ChildService.Create(user.UserID, child); err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, child)
}

// List godoc
// @Summary List my children
// @Tags children
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Child}
// @Router /api/children [get]
func (c *ChildController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	children, err := c.ChildService.List(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, children)
}

// Get godoc
// @Summary Fetch one child
// @Tags children
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Success 200 {object} util.Response{data=model.Child}
// @Failure 404 {object} util.Response
// @Router /api/children/{id} [get]
func (c *ChildController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	child, err := c.ChildService.Get(user.UserID, childID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, child)
}

// Update godoc
// @Summary Edit a child profile
// @Tags children
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Param   body body ChildRequest true "Child payload"
// @Success 200 {object} util.Response{data=model.Child}
// @Failure 404 {object} util.Response
// @Router /api/children/{id} [put]
func (c *ChildController) Update(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	var req ChildRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	dob, ok := req.dob(ctx)
	if !ok {
		return
	}

	child, err := c.ChildService.Update(user.UserID, childID, service.ChildUpdate{
		Name:        req.Name,
		DateOfBirth: dob,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, child)
}

// Delete godoc
// @Summary Remove a child profile
// @Tags children
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/children/{id} [delete]
func (c *ChildController) Delete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.ChildService.Delete(user.UserID, childID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
