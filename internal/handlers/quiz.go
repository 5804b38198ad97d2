package handlers

import (
	"net/http"

	"github.com/harshitha-prabhu/quizmaker-app/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
}

func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

type ChoiceRequest struct {
	Text      string `json:"text" binding:"required,min=1,max=500"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionRequest struct {
	Text    string          `json:"text" binding:"required,min=1,max=1000"`
	Points  int             `json:"points" binding:"omitempty,min=1"`
	Choices []ChoiceRequest `json:"choices" binding:"required,min=2,max=4,dive"`
}

type CreateQuizRequest struct {
	Title        string            `json:"title" binding:"required,min=1,max=200" example:"Capitals of Europe"`
	Description  *string           `json:"description" binding:"omitempty,max=1000"`
	Instructions *string           `json:"instructions" binding:"omitempty,max=500"`
	Questions    []QuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

type UpdateQuizRequest struct {
	Title        *string           `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string           `json:"description" binding:"omitempty,max=1000"`
	Instructions *string           `json:"instructions" binding:"omitempty,max=500"`
	Questions    []QuestionRequest `json:"questions" binding:"omitempty,min=1,dive"`
}

func toQuestionInputs(reqs []QuestionRequest) []services.QuestionInput {
	if reqs == nil {
		return nil
	}
	questions := make([]services.QuestionInput, len(reqs))
	for i, q := range reqs {
		choices := make([]services.ChoiceInput, len(q.Choices))
		for j, ch := range q.Choices {
			choices[j] = services.ChoiceInput{Text: ch.Text, IsCorrect: ch.IsCorrect}
		}
		questions[i] = services.QuestionInput{Text: q.Text, Points: q.Points, Choices: choices}
	}
	return questions
}

// ListQuizzes godoc
// @Summary      List all active quizzes
// @Description  Every active quiz with its question count, newest first
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} object
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	quizzes, err := h.quizService.ListQuizzes()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// ListMyQuizzes godoc
// @Summary      List the authenticated user's quizzes
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} object
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes/mine [get]
func (h *QuizHandler) ListMyQuizzes(c *gin.Context) {
	userID := c.GetString("user_id")

	quizzes, err := h.quizService.ListQuizzesByCreator(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quizzes)
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with its full question and choice set
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuizRequest true "Quiz data"
// @Success      201 {object} object
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(userID, services.QuizInput{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Questions:    toQuestionInputs(req.Questions),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Quiz with ordered questions and choices; readable by any user
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} object
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	quiz, err := h.quizService.GetQuizDetail(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// UpdateQuiz godoc
// @Summary      Update a quiz
// @Description  Patch metadata and/or replace the entire question set; owner only
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Param        request body UpdateQuizRequest true "Quiz data"
// @Success      200 {object} object
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [put]
func (h *QuizHandler) UpdateQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.UpdateQuiz(userID, c.Param("id"), services.QuizUpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Instructions: req.Instructions,
		Questions:    toQuestionInputs(req.Questions),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Soft-delete: the quiz disappears from reads, attempts stay
// @Tags         quizzes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := h.quizService.DeleteQuiz(userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}
