package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/internal/app/service"
	"github.com/bottic/shop-backend/internal/db"
	"github.com/bottic/shop-backend/internal/middleware"
)

func setupAuthControllerTest(t *testing.T) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, "test-secret", 15*time.Minute, 24*time.Hour)
	authController := NewAuthController(authService, 24*time.Hour)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/auth/register", authController.Register)
	router.POST("/api/v1/auth/login", authController.Login)
	router.GET("/api/v1/auth/me", authMiddleware.Authenticate(), authController.GetMe)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthController_RegisterAndLogin(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "flow@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var registerResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	tokens := registerResp["tokens"].(map[string]interface{})
	assert.NotEmpty(t, tokens["access_token"])
	user := registerResp["user"].(map[string]interface{})
	assert.Equal(t, "flow@example.com", user["email"])
	// The password hash never leaves the server
	_, hasHash := user["password_hash"]
	assert.False(t, hasHash)

	w = postJSON(t, router, "/api/v1/auth/login", map[string]interface{}{
		"email":    "flow@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "taken@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "taken@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "AUTH_EMAIL_EXISTS", response["error"])
}

func TestAuthController_Register_InvalidInput(t *testing.T) {
	router := setupAuthControllerTest(t)

	// Short password
	w := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "short@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email
	w = postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "not-an-email",
		"password": "password123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "victim@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/api/v1/auth/login", map[string]interface{}{
		"email":    "victim@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_GetMe(t *testing.T) {
	router := setupAuthControllerTest(t)

	w := postJSON(t, router, "/api/v1/auth/register", map[string]interface{}{
		"email":    "me@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var registerResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registerResp))
	accessToken := registerResp["tokens"].(map[string]interface{})["access_token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)

	assert.Equal(t, http.StatusOK, w2.Code)

	var meResp map[string]interface{}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &meResp))
	assert.Equal(t, "me@example.com", meResp["user"].(map[string]interface{})["email"])

	// No token at all
	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	assert.Equal(t, http.StatusUnauthorized, w3.Code)
}
