package controller

import (
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	Importer *service.ImportService
}

func NewImportController(importer *service.ImportService) *ImportController {
	return &ImportController{Importer: importer}
}

// ImportYAML godoc
// @Summary Import a challenge or quiz
// @Description Accepts {type, data} or raw YAML in content
// @Tags Import
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ImportRequest true "Document"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Router /import/yaml [post]
func (c *ImportController) ImportYAML(ctx *gin.Context) {
	var req service.ImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Import failed: "+err.Error())
		return
	}

	result, err := c.Importer.Import(req, service.ImportOptions{})
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
