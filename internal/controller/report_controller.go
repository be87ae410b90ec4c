package controller

import (
	"earlyledge_backend/internal/service"
	"earlyledge_backend/internal/util"
	"regexp"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Report godoc
// @Summary Activity report for one child
// @Description Totals, per-week rate, skill distribution, highlights and a monthly series over the selected range, clamped to the plan's visibility window.
// @Tags reports
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Param   time_range query string false "last30days, last3months or thisyear" default(last3months)
// @Success 200 {object} util.Response{data=model.ReportSummary}
// @Failure 404 {object} util.Response
// @Router /api/children/{id}/reports [get]
func (c *ReportController) Report(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	summary, err := c.ReportService.Build(user.UserID, childID, ctx.Query("time_range"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// MonthlyPDF godoc
// @Summary Printable monthly report (PDF)
// @Description Plus feature. Streams the month's activity log and skill distribution as a PDF attachment.
// @Tags reports
// @Produce  application/pdf
// @Security ApiKeyAuth
// @Param   id path int true "Child ID"
// @Param   month query string true "Month as YYYY-MM"
// @Success 200 {file} file
// @Failure 400 {object} util.Response "Malformed month"
// @Failure 403 {object} util.Response "Requires the plus plan"
// @Failure 404 {object} util.Response
// @Router /api/children/{id}/reports/monthly [get]
func (c *ReportController) MonthlyPDF(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	childID, ok := parseUintParam(ctx, "id")
	if !ok {
		return
	}

	month := ctx.Query("month")
	if !monthPattern.MatchString(month) {
		util.BadRequest(ctx, "month must be YYYY-MM")
		return
	}

	data, filename, err := c.ReportService.MonthlyPDF(user.UserID, childID, month)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(200, "application/pdf", data)
}
