package controller

import (
	"pretexta_backend/internal/model"
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Content *service.ContentService
}

func NewChallengeController(content *service.ContentService) *ChallengeController {
	return &ChallengeController{Content: content}
}

// @Summary List challenges
// @Tags Challenges
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Challenge}
// @Router /challenges [get]
func (c *ChallengeController) List(ctx *gin.Context) {
	challenges, err := c.Content.ListChallenges()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, challenges)
}

// @Summary Get a challenge
// @Tags Challenges
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Challenge ID"
// @Success 200 {object} util.Response{data=model.Challenge}
// @Failure 404 {object} util.Response
// @Router /challenges/{id} [get]
func (c *ChallengeController) Get(ctx *gin.Context) {
	challenge, err := c.Content.GetChallenge(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, challenge)
}

// @Summary Create a challenge
// @Tags Challenges
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.Challenge true "Challenge"
// @Success 201 {object} util.Response{data=model.Challenge}
// @Failure 400 {object} util.Response
// @Router /challenges [post]
func (c *ChallengeController) Create(ctx *gin.Context) {
	var challenge model.Challenge
	if err := ctx.ShouldBindJSON(&challenge); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Content.CreateChallenge(&challenge); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, challenge)
}
