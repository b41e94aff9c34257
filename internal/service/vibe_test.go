package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/mocks"
	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/testhelpers"
	"github.com/aureapp/aure-backend/internal/types"
)

func completedSession(t *testing.T, db *gorm.DB, userID uuid.UUID) (*SessionDetail, models.Perfume) {
	t.Helper()
	perfume := models.Perfume{
		Name:        "Santal 33",
		House:       "Le Labo",
		ScentFamily: models.FamilyWoody,
		Performance: models.PerformanceBalanced,
		AuraWords:   models.JSONBStringArray{"Grounded", "Timeless"},
		Moods:       models.JSONBStringArray{"confident"},
		Occasions:   models.JSONBStringArray{"work"},
		Notes:       models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
		Embedding:   GenerateEmbedding("Santal 33 Le Labo"),
	}
	require.NoError(t, db.Create(&perfume).Error)
	seedCollectionEntry(t, db, userID, perfume)

	detail, err := newSessionService(db).CreateWithRecommendation(context.Background(), userID, types.CreateSessionRequest{
		Mood:            "confident",
		ScentDirections: []string{"woody"},
		Occasion:        "work",
	})
	require.NoError(t, err)
	require.True(t, detail.Completed())
	return detail, perfume
}

func TestVibeService_SaveAndGet(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewVibeService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	session, _ := completedSession(t, db, userID)

	vibe, err := svc.Save(ctx, userID, types.SaveVibeRequest{
		SessionID: session.ID,
		Name:      "Boardroom armor",
		Notes:     "the meeting went well",
	})
	require.NoError(t, err)

	t.Run("vibe denormalizes session and perfume", func(t *testing.T) {
		assert.Equal(t, "Santal 33", vibe.PerfumeName)
		assert.Equal(t, "Le Labo", vibe.PerfumeHouse)
		assert.Equal(t, "woody", vibe.ScentFamily)
		assert.Equal(t, "confident", vibe.Mood)
		assert.Equal(t, "work", vibe.Occasion)
		assert.Equal(t, []string{"Grounded", "Timeless"}, []string(vibe.AuraWords))
		assert.False(t, vibe.HasImage)
	})

	t.Run("get resolves perfume image through session", func(t *testing.T) {
		require.NoError(t, db.Model(&models.Perfume{}).
			Where("name = ?", "Santal 33").
			Update("image_url", "https://img.example/santal.jpg").Error)

		detail, err := svc.Get(ctx, userID, vibe.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/santal.jpg", detail.PerfumeImageURL)
		assert.Empty(t, detail.OutfitImageURL)
	})

	t.Run("list returns newest first", func(t *testing.T) {
		vibes, err := svc.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, vibes, 1)
		assert.Equal(t, "Boardroom armor", vibes[0].Name)
	})

	t.Run("foreign vibe is invisible", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid.New(), vibe.ID)
		assert.ErrorIs(t, err, ErrVibeNotFound)
	})

	t.Run("delete owned vibe", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), vibe.ID), ErrVibeNotFound)
		require.NoError(t, svc.Delete(ctx, userID, vibe.ID))

		vibes, err := svc.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, vibes)
	})
}

func TestVibeService_OutfitImageURL(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	ctx := context.Background()
	userID := uuid.New()

	session, _ := completedSession(t, db, userID)

	store := new(mocks.MockObjectStore)
	store.On("PresignDownload", mock.Anything, "outfits/key.jpg", 15*time.Minute).
		Return("https://bucket.example/outfits/key.jpg?sig=abc", nil)

	svc := NewVibeService(db, store)
	vibe, err := svc.Save(ctx, userID, types.SaveVibeRequest{
		SessionID:      session.ID,
		Name:           "Date night",
		OutfitImageKey: "outfits/key.jpg",
	})
	require.NoError(t, err)
	assert.True(t, vibe.HasImage)

	detail, err := svc.Get(ctx, userID, vibe.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example/outfits/key.jpg?sig=abc", detail.OutfitImageURL)
	store.AssertExpectations(t)

	t.Run("presign failure leaves url empty", func(t *testing.T) {
		failing := new(mocks.MockObjectStore)
		failing.On("PresignDownload", mock.Anything, "outfits/key.jpg", 15*time.Minute).
			Return("", errors.New("bucket unreachable"))

		detail, err := NewVibeService(db, failing).Get(ctx, userID, vibe.ID)
		require.NoError(t, err)
		assert.Empty(t, detail.OutfitImageURL)
	})
}

func TestVibeService_SaveValidation(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := NewVibeService(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("unknown session rejected", func(t *testing.T) {
		_, err := svc.Save(ctx, userID, types.SaveVibeRequest{
			SessionID: uuid.New(),
			Name:      "ghost",
		})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("incomplete session rejected", func(t *testing.T) {
		incomplete, err := newSessionService(db).CreateWithRecommendation(ctx, userID, types.CreateSessionRequest{
			Mood:            "soft",
			ScentDirections: []string{"musky"},
			Occasion:        "home",
		})
		require.NoError(t, err)
		require.False(t, incomplete.Completed())

		_, err = svc.Save(ctx, userID, types.SaveVibeRequest{
			SessionID: incomplete.ID,
			Name:      "too soon",
		})
		assert.ErrorIs(t, err, ErrSessionNotComplete)
	})

	t.Run("foreign session rejected", func(t *testing.T) {
		session, _ := completedSession(t, db, userID)
		_, err := svc.Save(ctx, uuid.New(), types.SaveVibeRequest{
			SessionID: session.ID,
			Name:      "not mine",
		})
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}
