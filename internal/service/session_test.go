package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/mocks"
	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/testhelpers"
	"github.com/aureapp/aure-backend/internal/types"
)

func newSessionService(db *gorm.DB) *SessionService {
	return NewSessionService(db, recommend.DefaultConfig(), nil, nil)
}

func seedCollectionEntry(t *testing.T, db *gorm.DB, userID uuid.UUID, perfume models.Perfume) models.UserPerfume {
	t.Helper()
	entry := models.UserPerfume{
		UserID:        userID,
		PerfumeID:     perfume.ID,
		DislikedNotes: models.JSONBStringArray{},
	}
	require.NoError(t, db.Create(&entry).Error)
	return entry
}

func TestSessionService_CreateWithRecommendation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSessionService(db)
	ctx := context.Background()
	userID := uuid.New()

	match := models.Perfume{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyWoody,
		Performance: models.PerformanceBalanced,
		Moods:       models.JSONBStringArray{"confident"},
		Occasions:   models.JSONBStringArray{"work"},
		Notes:       models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
		Embedding:   GenerateEmbedding("Santal 33 Le Labo"),
	}
	require.NoError(t, db.Create(&match).Error)

	miss := models.Perfume{
		Name:        "Delina",
		House:       "Parfums de Marly",
		ScentFamily: models.FamilyFloral,
		Performance: models.PerformanceBalanced,
		Moods:       models.JSONBStringArray{"soft"},
		Occasions:   models.JSONBStringArray{"date"},
		Notes:       models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
		Embedding:   GenerateEmbedding("Delina Parfums de Marly"),
	}
	require.NoError(t, db.Create(&miss).Error)

	seedCollectionEntry(t, db, userID, match)
	seedCollectionEntry(t, db, userID, miss)

	detail, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
		Mood:            "confident",
		ScentDirections: []string{"woody"},
		Occasion:        "work",
	})
	require.NoError(t, err)

	assert.True(t, detail.Completed())
	require.NotNil(t, detail.RecommendedPerfumeID)
	assert.Equal(t, match.ID, *detail.RecommendedPerfumeID)
	require.NotNil(t, detail.Perfume)
	assert.Equal(t, "Santal 33", detail.Perfume.Name)

	// family 30 + mood 25 + occasion 20 + never-worn 5
	require.NotNil(t, detail.MatchScore)
	assert.InDelta(t, 80.0, *detail.MatchScore, 0.001)
	assert.Equal(t, "perfect-match", detail.RecommendationType)

	assert.Contains(t, detail.EditorialExplanation, "Santal 33")
	assert.Equal(t, "You carry your own warmth today.", detail.Affirmation)

	t.Run("session is persisted with outcome", func(t *testing.T) {
		var stored models.Session
		require.NoError(t, db.First(&stored, "id = ?", detail.ID).Error)
		assert.True(t, stored.Completed())
		assert.Equal(t, "perfect-match", stored.RecommendationType)
	})
}

func TestSessionService_EmptyCollection(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSessionService(db)
	ctx := context.Background()
	userID := uuid.New()

	detail, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
		Mood:            "playful",
		ScentDirections: []string{"fresh"},
		Occasion:        "casual",
	})
	require.NoError(t, err)

	assert.False(t, detail.Completed())
	assert.Nil(t, detail.RecommendedPerfumeID)
	assert.Nil(t, detail.Perfume)

	var stored models.Session
	require.NoError(t, db.First(&stored, "id = ?", detail.ID).Error)
	assert.False(t, stored.Completed())
}

func TestSessionService_WeatherContext(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSessionService(db)
	ctx := context.Background()
	userID := uuid.New()

	perfume := models.Perfume{
		Name:        "Virgin Island Water",
		House:       "Creed",
		ScentFamily: models.FamilyFresh,
		Performance: models.PerformanceOfficeSafe,
		Notes:       models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
		Embedding:   GenerateEmbedding("Virgin Island Water Creed"),
		WeatherProfile: models.WeatherProfile{
			IdealTemperature: []models.TemperatureCategory{models.TempHot},
		},
	}
	require.NoError(t, db.Create(&perfume).Error)
	seedCollectionEntry(t, db, userID, perfume)

	detail, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
		Mood:            "playful",
		ScentDirections: []string{"fresh"},
		Occasion:        "casual",
		Weather: &types.WeatherInput{
			Temperature:         32,
			TemperatureCategory: "hot",
			IsManual:            true,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, detail.Weather)
	assert.Equal(t, models.TempHot, detail.Weather.TemperatureCategory)
	assert.True(t, detail.Weather.IsManual)

	// family 30 + weather 15 + never-worn 5
	require.NotNil(t, detail.MatchScore)
	assert.InDelta(t, 50.0, *detail.MatchScore, 0.001)
	assert.Equal(t, "good-match", detail.RecommendationType)
	assert.Contains(t, detail.EditorialExplanation, "performs wonderfully in the heat")
}

func TestSessionService_CandidateLoadFailures(t *testing.T) {
	t.Run("orphaned entry is skipped", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		svc := newSessionService(db)
		userID := uuid.New()

		orphan := models.UserPerfume{
			UserID:        userID,
			PerfumeID:     uuid.New(),
			DislikedNotes: models.JSONBStringArray{},
		}
		require.NoError(t, db.Create(&orphan).Error)

		perfume := seedPerfume(t, db, "Another 13", "Le Labo", models.FamilyMusky)
		seedCollectionEntry(t, db, userID, perfume)

		detail, err := svc.CreateWithRecommendation(context.Background(), userID, types.CreateSessionRequest{
			Mood:            "soft",
			ScentDirections: []string{"musky"},
			Occasion:        "home",
		})
		require.NoError(t, err)
		require.NotNil(t, detail.RecommendedPerfumeID)
		assert.Equal(t, perfume.ID, *detail.RecommendedPerfumeID)
	})

	t.Run("storage fault surfaces as an error", func(t *testing.T) {
		db := testhelpers.SetupTestDatabase(t)
		svc := newSessionService(db)
		userID := uuid.New()

		perfume := seedPerfume(t, db, "Blanche", "Byredo", models.FamilyFresh)
		seedCollectionEntry(t, db, userID, perfume)

		require.NoError(t, db.Migrator().DropTable(&models.Perfume{}))

		_, err := svc.CreateWithRecommendation(context.Background(), userID, types.CreateSessionRequest{
			Mood:            "soft",
			ScentDirections: []string{"fresh"},
			Occasion:        "home",
		})
		assert.Error(t, err)
	})
}

func TestSessionService_EditorialCopy(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	userID := uuid.New()

	perfume := seedPerfume(t, db, "Santal 33", "Le Labo", models.FamilyWoody)
	seedCollectionEntry(t, db, userID, perfume)

	req := types.CreateSessionRequest{
		Mood:            "confident",
		ScentDirections: []string{"woody"},
		Occasion:        "work",
	}

	t.Run("generated copy is used when available", func(t *testing.T) {
		generator := new(mocks.MockCopyGenerator)
		generator.On("GenerateCopy", mock.Anything, mock.Anything, "confident", "work", models.TemperatureCategory("")).
			Return("A woody anchor for a confident day.", "You set the tone.", nil)

		svc := NewSessionService(db, recommend.DefaultConfig(), generator, nil)
		detail, err := svc.CreateWithRecommendation(ctx, userID, req)
		require.NoError(t, err)

		assert.Equal(t, "A woody anchor for a confident day.", detail.EditorialExplanation)
		assert.Equal(t, "You set the tone.", detail.Affirmation)
		generator.AssertExpectations(t)
	})

	t.Run("falls back to template copy on generation failure", func(t *testing.T) {
		generator := new(mocks.MockCopyGenerator)
		generator.On("GenerateCopy", mock.Anything, mock.Anything, "confident", "work", models.TemperatureCategory("")).
			Return("", "", errors.New("upstream unavailable"))

		svc := NewSessionService(db, recommend.DefaultConfig(), generator, nil)
		detail, err := svc.CreateWithRecommendation(ctx, userID, req)
		require.NoError(t, err)

		assert.Contains(t, detail.EditorialExplanation, "Santal 33")
		assert.NotEmpty(t, detail.Affirmation)
	})
}

func TestSessionService_HistoryAndOwnership(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSessionService(db)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
			Mood:            "confident",
			ScentDirections: []string{"woody"},
			Occasion:        "work",
		})
		require.NoError(t, err)
	}

	history, err := svc.History(ctx, userID, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	t.Run("foreign session is invisible", func(t *testing.T) {
		_, err := svc.GetSession(ctx, uuid.New(), history[0].ID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("owner can fetch session", func(t *testing.T) {
		detail, err := svc.GetSession(ctx, userID, history[0].ID)
		require.NoError(t, err)
		assert.Equal(t, history[0].ID, detail.ID)
	})
}

func TestSessionService_TodaySession(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := newSessionService(db)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no sessions yet", func(t *testing.T) {
		detail, err := svc.TodaySession(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("incomplete session does not count", func(t *testing.T) {
		_, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
			Mood:            "soft",
			ScentDirections: []string{"musky"},
			Occasion:        "home",
		})
		require.NoError(t, err)

		detail, err := svc.TodaySession(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, detail)
	})

	t.Run("completed session today is returned", func(t *testing.T) {
		perfume := seedPerfume(t, db, "Musc Ravageur", "Frederic Malle", models.FamilyMusky)
		seedCollectionEntry(t, db, userID, perfume)

		created, err := svc.CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
			Mood:            "soft",
			ScentDirections: []string{"musky"},
			Occasion:        "home",
		})
		require.NoError(t, err)
		require.True(t, created.Completed())

		detail, err := svc.TodaySession(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, detail)
		assert.Equal(t, created.ID, detail.ID)
		require.NotNil(t, detail.Perfume)
		assert.Equal(t, "Musc Ravageur", detail.Perfume.Name)
	})
}
