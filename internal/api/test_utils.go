package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/middleware"
	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/testhelpers"
)

const testJWTSecret = "test-secret"

// setupTestRouter builds a gin engine with the full protected route surface
// against an in-memory database. External collaborators are left unwired so
// every fallback path is exercised.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)

	authService := service.NewAuthService(db, testJWTSecret)
	collectionService := service.NewCollectionService(db)
	sessionService := service.NewSessionService(db, recommend.DefaultConfig(), nil, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")

	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewPerfumeHandler(service.NewPerfumeService(db)).RegisterRoutes(protected)
	NewCollectionHandler(collectionService).RegisterRoutes(protected)
	NewSessionHandler(sessionService).RegisterRoutes(protected, nil)
	NewWearLogHandler(service.NewWearLogService(db, collectionService)).RegisterRoutes(protected)
	NewVibeHandler(service.NewVibeService(db, nil)).RegisterRoutes(protected)
	NewPreferenceHandler(service.NewPreferenceService(db)).RegisterRoutes(protected)

	return router, db
}

// createTestUserAndToken registers a user directly through the auth service
// and returns the persisted user with a valid bearer token.
func createTestUserAndToken(t *testing.T, db *gorm.DB) (models.User, string) {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)

	email := fmt.Sprintf("user-%d@example.com", count+1)
	token, err := service.NewAuthService(db, testJWTSecret).Register("Test User", email, "password123")
	require.NoError(t, err)

	var user models.User
	require.NoError(t, db.Where("email = ?", email).First(&user).Error)
	return user, token
}

// doJSON performs a JSON request against the router with optional auth.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
