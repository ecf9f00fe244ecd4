package controller

import (
	"pretexta_backend/internal/service"
	"pretexta_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Content *service.ContentService
}

func NewQuizController(content *service.ContentService) *QuizController {
	return &QuizController{Content: content}
}

// @Summary List quizzes
// @Tags Quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /quizzes [get]
func (c *QuizController) List(ctx *gin.Context) {
	quizzes, err := c.Content.ListQuizzes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// @Summary Get a quiz
// @Tags Quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.Content.GetQuiz(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}
