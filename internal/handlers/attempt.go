package handlers

import (
	"net/http"

	"github.com/harshitha-prabhu/quizmaker-app/internal/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService *services.AttemptService
}

func NewAttemptHandler(attemptService *services.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService}
}

type ResponseRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	ChoiceID   string `json:"choice_id" binding:"required"`
}

// SubmitAttemptRequest carries the selected choice per answered question.
// Unanswered questions are simply absent; the service records them as
// unanswered responses.
type SubmitAttemptRequest struct {
	Responses []ResponseRequest `json:"responses" binding:"omitempty,dive"`
}

// StartAttempt godoc
// @Summary      Start an attempt
// @Description  Create an in-progress attempt against an active, scoreable quiz
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quiz ID"
// @Success      201 {object} object
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quizzes/{id}/attempts [post]
func (h *AttemptHandler) StartAttempt(c *gin.Context) {
	userID := c.GetString("user_id")

	attempt, err := h.attemptService.Start(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attempt)
}

// SubmitAttempt godoc
// @Summary      Submit an attempt
// @Description  Grade the attempt exactly once; a second submission returns 409
// @Tags         attempts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Attempt ID"
// @Param        request body SubmitAttemptRequest true "Selected answers"
// @Success      200 {object} object
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/attempts/{id}/submit [post]
func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	userID := c.GetString("user_id")

	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	responses := make([]services.ResponseInput, len(req.Responses))
	for i, r := range req.Responses {
		responses[i] = services.ResponseInput{QuestionID: r.QuestionID, ChoiceID: r.ChoiceID}
	}

	result, err := h.attemptService.Submit(userID, c.Param("id"), responses)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAttempt godoc
// @Summary      Get attempt results
// @Description  Attempt with stored responses and per-question detail; owner only
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Attempt ID"
// @Success      200 {object} object
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/attempts/{id} [get]
func (h *AttemptHandler) GetAttempt(c *gin.Context) {
	userID := c.GetString("user_id")

	results, err := h.attemptService.GetResults(userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// ListAttempts godoc
// @Summary      List the authenticated user's attempts
// @Tags         attempts
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} object
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/attempts [get]
func (h *AttemptHandler) ListAttempts(c *gin.Context) {
	userID := c.GetString("user_id")

	attempts, err := h.attemptService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, attempts)
}
