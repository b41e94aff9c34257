package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/api"
	"github.com/aureapp/aure-backend/internal/middleware"
	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/service"
	"github.com/aureapp/aure-backend/internal/testdb"
)

func newRouter(db *gorm.DB, jwtSecret string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(db, jwtSecret)
	collectionService := service.NewCollectionService(db)
	sessionService := service.NewSessionService(db, recommend.DefaultConfig(), nil, nil)

	router := gin.New()
	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	api.NewPerfumeHandler(service.NewPerfumeService(db)).RegisterRoutes(protected)
	api.NewCollectionHandler(collectionService).RegisterRoutes(protected)
	api.NewSessionHandler(sessionService).RegisterRoutes(protected, nil)
	api.NewVibeHandler(service.NewVibeService(db, nil)).RegisterRoutes(protected)

	return router
}

func request(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
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

// TestDailyRitualFlow walks the core product loop against real postgres:
// register, build a collection, run a recommendation, save the vibe.
func TestDailyRitualFlow(t *testing.T) {
	td := testdb.SetupTestDB(t)
	router := newRouter(td.DB, td.Config.JWTSecret)

	w := request(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Maya",
		"email":    "maya@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)

	w = request(t, router, "POST", "/api/v1/collection/by-name", auth.Token, map[string]interface{}{
		"name":         "Tobacco Vanille",
		"house":        "Tom Ford",
		"scent_family": "amber",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(t, router, "POST", "/api/v1/sessions", auth.Token, map[string]interface{}{
		"mood":             "warm",
		"occasion":         "date",
		"scent_directions": []string{"amber"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var session struct {
		ID                   string   `json:"id"`
		RecommendedPerfumeID *string  `json:"recommended_perfume_id"`
		MatchScore           *float64 `json:"match_score"`
		RecommendationType   string   `json:"recommendation_type"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	require.NotNil(t, session.RecommendedPerfumeID)
	require.NotNil(t, session.MatchScore)
	assert.NotEmpty(t, session.RecommendationType)

	w = request(t, router, "POST", "/api/v1/vibes", auth.Token, map[string]interface{}{
		"session_id": session.ID,
		"name":       "Amber evening",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var vibe models.Vibe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vibe))
	assert.Equal(t, "Tobacco Vanille", vibe.PerfumeName)
	assert.Equal(t, "amber", vibe.ScentFamily)
}

// TestSemanticSearch exercises the pgvector-backed search path that sqlite
// cannot cover.
func TestSemanticSearch(t *testing.T) {
	td := testdb.SetupTestDB(t)
	svc := service.NewPerfumeService(td.DB)
	ctx := context.Background()

	names := []struct{ name, house string }{
		{"Santal 33", "Le Labo"},
		{"Blanche", "Byredo"},
		{"Mojave Ghost", "Byredo"},
	}
	for _, n := range names {
		_, err := svc.CreatePerfume(ctx, &models.Perfume{
			Name:        n.name,
			House:       n.house,
			ScentFamily: models.FamilyWoody,
			Performance: models.PerformanceBalanced,
			Notes:       models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
		})
		require.NoError(t, err)
	}

	results, err := svc.SearchPerfumes(ctx, "byredo")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.Equal(t, "Byredo", p.House)
	}

	t.Run("no match returns empty slice", func(t *testing.T) {
		results, err := svc.SearchPerfumes(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
