package controller

import (
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LLMController struct {
	Configs *service.LLMConfigService
	LLM     *service.LLMService
}

func NewLLMController(configs *service.LLMConfigService, llmService *service.LLMService) *LLMController {
	return &LLMController{Configs: configs, LLM: llmService}
}

// ListConfigs godoc
// @Summary List provider configs
// @Description Credentials are always masked
// @Tags LLM
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.LLMConfig}
// @Router /llm/config [get]
func (c *LLMController) ListConfigs(ctx *gin.Context) {
	configs, err := c.Configs.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, configs)
}

// SaveConfig godoc
// @Summary Save a provider config
// @Description Upserts by provider; an empty api_key removes the provider's config
// @Tags LLM
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.LLMConfig true "Provider config"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /llm/config [post]
func (c *LLMController) SaveConfig(ctx *gin.Context) {
	var cfg model.LLMConfig
	if err := ctx.ShouldBindJSON(&cfg); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	deleted, err := c.Configs.Save(&cfg)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	if deleted {
		util.Success(ctx, gin.H{"message": "LLM config deleted"})
		return
	}
	util.Success(ctx, gin.H{"message": "LLM config saved"})
}

// Generate godoc
// @Summary Generate a pretext
// @Tags LLM
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.GenerateRequest true "Prompt and context"
// @Success 200 {object} util.Response{data=service.GenerateResult}
// @Failure 400 {object} util.Response "Provider not configured or unsupported"
// @Failure 500 {object} util.Response "Provider call failed"
// @Router /llm/generate [post]
func (c *LLMController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LLM.Generate(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Chat godoc
// @Summary Roleplay chat turn
// @Description Sends one message to the simulated attacker; status is ongoing, failed or completed
// @Tags LLM
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ChatRequest true "History, persona and message"
// @Success 200 {object} util.Response{data=service.ChatReply}
// @Failure 400 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /llm/chat [post]
func (c *LLMController) Chat(ctx *gin.Context) {
	var req service.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.LLM.Converse(ctx.Request.Context(), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, reply)
}
