package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bottic/shop-backend/internal/app/model"
	"github.com/bottic/shop-backend/internal/app/repository"
	"github.com/bottic/shop-backend/internal/app/service"
	"github.com/bottic/shop-backend/internal/db"
	"github.com/bottic/shop-backend/internal/middleware"
)

func setupReviewControllerTest(t *testing.T) (*gin.Engine, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	user := &model.User{Email: "reviewer@example.com", PasswordHash: "hashed"}
	require.NoError(t, testDB.Create(user).Error)

	product := &model.Product{
		Title: "Notebook",
		Price: decimal.RequireFromString("4.50"),
		SKU:   "NB-001",
	}
	require.NoError(t, testDB.Create(product).Error)

	reviewRepo := repository.NewReviewRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	reviewService := service.NewReviewService(reviewRepo, productRepo)
	reviewController := NewReviewController(reviewService)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Stand-in for the auth middleware
	authenticated := func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID)
		c.Set(middleware.UserRoleKey, model.RoleUser)
		c.Next()
	}

	router.GET("/api/v1/products/:id/reviews", reviewController.GetProductReviews)
	router.POST("/api/v1/products/:id/reviews", authenticated, reviewController.CreateReview)
	router.DELETE("/api/v1/reviews/:id", authenticated, reviewController.DeleteReview)

	return router, user, product
}

func TestReviewController_CreateAndList(t *testing.T) {
	router, user, product := setupReviewControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"rating":  4,
		"comment": "Does the job",
	})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/products/%d/reviews", product.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/products/%d/reviews", product.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
	reviews := response["reviews"].([]interface{})
	require.Len(t, reviews, 1)
	review := reviews[0].(map[string]interface{})
	assert.Equal(t, float64(4), review["rating"])
	assert.Equal(t, float64(user.ID), review["user_id"])
}

func TestReviewController_CreateReview_RatingBounds(t *testing.T) {
	router, _, product := setupReviewControllerTest(t)

	for _, rating := range []int{0, 6, -1} {
		body, _ := json.Marshal(map[string]interface{}{
			"rating": rating,
		})
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/products/%d/reviews", product.ID), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d must be rejected", rating)
	}
}

func TestReviewController_CreateReview_ProductGone(t *testing.T) {
	router, _, _ := setupReviewControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"rating": 3,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/99999/reviews", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PRODUCT_NOT_FOUND")
}

func TestReviewController_DeleteReview(t *testing.T) {
	router, _, product := setupReviewControllerTest(t)

	body, _ := json.Marshal(map[string]interface{}{
		"rating": 5,
	})
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/products/%d/reviews", product.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	reviewID := created["review"].(map[string]interface{})["id"].(float64)

	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%.0f", reviewID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Second delete: the review is gone
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%.0f", reviewID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
