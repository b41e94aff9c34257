package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/service"
)

func seedWoodyCollection(t *testing.T, db *gorm.DB, token string, router *gin.Engine) models.Perfume {
	t.Helper()
	perfume := models.Perfume{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyWoody,
		Performance: models.PerformanceBalanced,
		Notes:       models.NotePyramid{Top: []string{"cardamom"}, Heart: []string{"iris"}, Base: []string{"sandalwood"}},
		Moods:       models.JSONBStringArray{"grounded", "confident"},
		Occasions:   models.JSONBStringArray{"work", "casual"},
		AuraWords:   models.JSONBStringArray{"Grounded", "Timeless"},
		Embedding:   service.GenerateEmbedding("Santal 33 Le Labo"),
	}
	require.NoError(t, db.Create(&perfume).Error)

	w := doJSON(t, router, "POST", "/api/v1/collection", token, map[string]interface{}{
		"perfume_id": perfume.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return perfume
}

func TestCreateSession(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db)
	perfume := seedWoodyCollection(t, db, token, router)

	w := doJSON(t, router, "POST", "/api/v1/sessions", token, map[string]interface{}{
		"mood":             "grounded",
		"occasion":         "work",
		"scent_directions": []string{"woody"},
		"outfit_styles":    []string{"corporate"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var detail struct {
		models.Session
		Perfume *models.Perfume `json:"perfume"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))

	require.NotNil(t, detail.RecommendedPerfumeID)
	assert.Equal(t, perfume.ID, *detail.RecommendedPerfumeID)
	require.NotNil(t, detail.MatchScore)
	assert.Greater(t, *detail.MatchScore, 60.0)
	assert.NotEmpty(t, detail.RecommendationType)
	assert.NotEmpty(t, detail.EditorialExplanation)
	assert.NotEmpty(t, detail.Affirmation)
	require.NotNil(t, detail.CompletedAt)
	require.NotNil(t, detail.Perfume)
	assert.Equal(t, "Santal 33", detail.Perfume.Name)

	t.Run("today returns the completed session", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/sessions/today", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Session *struct {
				ID string `json:"id"`
			} `json:"session"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Session)
		assert.Equal(t, detail.ID.String(), resp.Session.ID)
	})

	t.Run("history lists the session", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/sessions", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Sessions []json.RawMessage `json:"sessions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Sessions, 1)
	})

	t.Run("get by id enforces ownership", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/sessions/"+detail.ID.String(), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		_, otherToken := createTestUserAndToken(t, db)
		w = doJSON(t, router, "GET", "/api/v1/sessions/"+detail.ID.String(), otherToken, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateSessionEmptyCollection(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db)

	w := doJSON(t, router, "POST", "/api/v1/sessions", token, map[string]interface{}{
		"mood":             "confident",
		"occasion":         "date",
		"scent_directions": []string{"amber"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var detail models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Nil(t, detail.RecommendedPerfumeID)
	assert.Nil(t, detail.CompletedAt)

	t.Run("incomplete session is not today's pick", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/v1/sessions/today", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Session json.RawMessage `json:"session"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "null", string(resp.Session))
	})
}

func TestCreateSessionValidation(t *testing.T) {
	router, db := setupTestRouter(t)
	_, token := createTestUserAndToken(t, db)

	t.Run("missing scent directions", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/sessions", token, map[string]interface{}{
			"mood":     "confident",
			"occasion": "date",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing mood", func(t *testing.T) {
		w := doJSON(t, router, "POST", "/api/v1/sessions", token, map[string]interface{}{
			"occasion":         "date",
			"scent_directions": []string{"amber"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
