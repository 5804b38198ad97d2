package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/harshitha-prabhu/quizmaker-app/internal/middleware"
	"github.com/harshitha-prabhu/quizmaker-app/internal/models"
	"github.com/harshitha-prabhu/quizmaker-app/internal/services"
	"github.com/harshitha-prabhu/quizmaker-app/internal/stores"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Choice{},
		&models.Attempt{},
		&models.AttemptResponse{},
	)
	if err != nil {
		t.Fatalf("migrate test db failed: %v", err)
	}

	quizStore := stores.NewQuizStore(db)
	questionStore := stores.NewQuestionStore(db)
	choiceStore := stores.NewChoiceStore(db)
	attemptStore := stores.NewAttemptStore(db)

	authService := services.NewAuthService(db, "test-secret")
	scoringService := services.NewScoringService()
	quizService := services.NewQuizService(db, quizStore, questionStore, choiceStore)
	attemptService := services.NewAttemptService(db, quizStore, questionStore, attemptStore, scoringService)

	authHandler := NewAuthHandler(authService)
	quizHandler := NewQuizHandler(quizService)
	attemptHandler := NewAttemptHandler(attemptService)

	r := gin.New()

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		quizzes := api.Group("/quizzes")
		quizzes.Use(middleware.JWTAuth(authService))
		{
			quizzes.GET("", quizHandler.ListQuizzes)
			quizzes.GET("/mine", quizHandler.ListMyQuizzes)
			quizzes.POST("", quizHandler.CreateQuiz)
			quizzes.GET("/:id", quizHandler.GetQuiz)
			quizzes.PUT("/:id", quizHandler.UpdateQuiz)
			quizzes.DELETE("/:id", quizHandler.DeleteQuiz)
			quizzes.POST("/:id/attempts", attemptHandler.StartAttempt)
		}

		attempts := api.Group("/attempts")
		attempts.Use(middleware.JWTAuth(authService))
		{
			attempts.GET("", attemptHandler.ListAttempts)
			attempts.GET("/:id", attemptHandler.GetAttempt)
			attempts.POST("/:id/submit", attemptHandler.SubmitAttempt)
		}
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "password123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %q failed: %d %s", username, w.Code, w.Body.String())
	}
	var resp AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response failed: %v", err)
	}
	return resp.Token
}

func quizPayload() gin.H {
	return gin.H{
		"title": "Capitals",
		"questions": []gin.H{
			{
				"text":   "Capital of France?",
				"points": 2,
				"choices": []gin.H{
					{"text": "Paris", "is_correct": true},
					{"text": "Lyon"},
				},
			},
		},
	}
}

func createQuiz(t *testing.T, r *gin.Engine, token string) map[string]interface{} {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/v1/quizzes", token, quizPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("create quiz failed: %d %s", w.Code, w.Body.String())
	}
	var quiz map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &quiz); err != nil {
		t.Fatalf("decode quiz failed: %v", err)
	}
	return quiz
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/v1/quizzes", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/v1/quizzes", "not-a-token", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", w.Code)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupRouter(t)

	token := registerUser(t, r, "alice")
	if token == "" {
		t.Fatal("empty token from register")
	}

	// Duplicate username rejected.
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": "alice", "password": "password123",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate username, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice", "password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"username": "alice", "password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	r := setupRouter(t)
	token := registerUser(t, r, "alice")

	// One choice fails binding before the service is reached.
	payload := quizPayload()
	payload["questions"] = []gin.H{
		{
			"text":    "Capital of France?",
			"choices": []gin.H{{"text": "Paris", "is_correct": true}},
		},
	}
	if w := doJSON(t, r, http.MethodPost, "/api/v1/quizzes", token, payload); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for single-choice question, got %d", w.Code)
	}

	// No correct choice passes binding but fails the service invariant.
	payload = quizPayload()
	payload["questions"] = []gin.H{
		{
			"text":    "Capital of France?",
			"choices": []gin.H{{"text": "Paris"}, {"text": "Lyon"}},
		},
	}
	if w := doJSON(t, r, http.MethodPost, "/api/v1/quizzes", token, payload); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for question without correct choice, got %d", w.Code)
	}
}

func TestQuizCRUDOverHTTP(t *testing.T) {
	r := setupRouter(t)
	alice := registerUser(t, r, "alice")
	mallory := registerUser(t, r, "mallory")

	quiz := createQuiz(t, r, alice)
	quizID := quiz["id"].(string)

	w := doJSON(t, r, http.MethodGet, "/api/v1/quizzes/"+quizID, mallory, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("any user can read a quiz, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/quizzes/"+quizID, mallory, gin.H{"title": "hijacked"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign update, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/quizzes/"+quizID, alice, gin.H{"title": "European capitals"})
	if w.Code != http.StatusOK {
		t.Fatalf("owner update failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/quizzes/"+quizID, alice, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner delete failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/quizzes/"+quizID, alice, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestAttemptFlowOverHTTP(t *testing.T) {
	r := setupRouter(t)
	alice := registerUser(t, r, "alice")
	bob := registerUser(t, r, "bob")

	quiz := createQuiz(t, r, alice)
	quizID := quiz["id"].(string)
	questions := quiz["questions"].([]interface{})
	question := questions[0].(map[string]interface{})
	questionID := question["id"].(string)
	choiceID := question["choices"].([]interface{})[0].(map[string]interface{})["id"].(string)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/quizzes/%s/attempts", quizID), bob, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("start attempt failed: %d %s", w.Code, w.Body.String())
	}
	var attempt map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &attempt); err != nil {
		t.Fatalf("decode attempt failed: %v", err)
	}
	attemptID := attempt["id"].(string)

	submitBody := gin.H{
		"responses": []gin.H{
			{"question_id": questionID, "choice_id": choiceID},
		},
	}
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/attempts/%s/submit", attemptID), bob, submitBody)
	if w.Code != http.StatusOK {
		t.Fatalf("submit failed: %d %s", w.Code, w.Body.String())
	}
	var result map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode submit result failed: %v", err)
	}
	scoring := result["scoring"].(map[string]interface{})
	if scoring["score"].(float64) != 2 || scoring["percentage"].(float64) != 100 {
		t.Fatalf("unexpected scoring: %+v", scoring)
	}

	// Resubmitting conflicts.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/v1/attempts/%s/submit", attemptID), bob, submitBody)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 on resubmit, got %d %s", w.Code, w.Body.String())
	}

	// The quiz author cannot read someone else's attempt.
	w = doJSON(t, r, http.MethodGet, "/api/v1/attempts/"+attemptID, alice, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for foreign attempt, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/attempts/"+attemptID, bob, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get results failed: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/attempts", bob, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list attempts failed: %d %s", w.Code, w.Body.String())
	}
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode attempt list failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(list))
	}
}
