package controller

import (
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *service.SettingsService
}

func NewSettingsController(settings *service.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// @Summary Get settings
// @Tags Settings
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Settings}
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.Settings.Get()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, settings)
}

// @Summary Update settings
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body object true "Settings to change"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var updates map[string]interface{}
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Settings.Update(updates); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Settings updated"})
}
