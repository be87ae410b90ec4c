package controller

import (
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SkillController struct {
	SkillRepo *repository.SkillRepository
}

func NewSkillController(skillRepo *repository.SkillRepository) *SkillController {
	return &SkillController{SkillRepo: skillRepo}
}

// List godoc
// @Summary List the skill catalog
// @Tags skills
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.SkillCategory}
// @Router /api/skills [get]
func (c *SkillController) List(ctx *gin.Context) {
	skills, err := c.SkillRepo.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, skills)
}
