package controller

import (
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Reports *service.ReportService
}

func NewReportController(reports *service.ReportService) *ReportController {
	return &ReportController{Reports: reports}
}

// @Summary Simulation report
// @Description Simulation events with the susceptibility score
// @Tags Reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Simulation ID"
// @Success 200 {object} util.Response{data=service.Report}
// @Failure 404 {object} util.Response
// @Router /reports/{id}/json [get]
func (c *ReportController) JSON(ctx *gin.Context) {
	report, err := c.Reports.JSONReport(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
