package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/types"
)

var (
	ErrVibeNotFound       = errors.New("vibe not found")
	ErrSessionNotComplete = errors.New("session has no recommendation to save")
)

// ObjectStore presigns URLs for outfit image storage. Nil is a valid store;
// vibes then simply carry no outfit image URL.
type ObjectStore interface {
	PresignUpload(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
	PresignDownload(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// VibeDetail is a vibe with resolved image URLs.
type VibeDetail struct {
	models.Vibe
	PerfumeImageURL string `json:"perfume_image_url,omitempty"`
	OutfitImageURL  string `json:"outfit_image_url,omitempty"`
}

// VibeService manages saved vibes, the named keepsakes of completed sessions.
type VibeService struct {
	db    *gorm.DB
	store ObjectStore
}

func NewVibeService(db *gorm.DB, store ObjectStore) *VibeService {
	return &VibeService{db: db, store: store}
}

// Save snapshots a completed session as a named vibe. Perfume identity is
// denormalized from the session's recommendation at save time.
func (s *VibeService) Save(ctx context.Context, userID uuid.UUID, req types.SaveVibeRequest) (*models.Vibe, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", req.SessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if !session.Completed() || session.RecommendedPerfumeID == nil {
		return nil, ErrSessionNotComplete
	}

	var perfume models.Perfume
	if err := s.db.WithContext(ctx).First(&perfume, "id = ?", *session.RecommendedPerfumeID).Error; err != nil {
		return nil, err
	}

	auraWords := perfume.AuraWords
	if auraWords == nil {
		auraWords = models.JSONBStringArray{}
	}

	vibe := models.Vibe{
		UserID:         userID,
		SessionID:      session.ID,
		Name:           req.Name,
		Notes:          req.Notes,
		HasImage:       req.OutfitImageKey != "",
		OutfitImageKey: req.OutfitImageKey,
		PerfumeName:    perfume.Name,
		PerfumeHouse:   perfume.House,
		ScentFamily:    string(perfume.ScentFamily),
		AuraWords:      auraWords,
		Mood:           session.Mood,
		Occasion:       session.Occasion,
	}
	if err := s.db.WithContext(ctx).Create(&vibe).Error; err != nil {
		return nil, err
	}
	return &vibe, nil
}

// List returns the user's vibes, newest first, with resolved image URLs.
func (s *VibeService) List(ctx context.Context, userID uuid.UUID) ([]VibeDetail, error) {
	var vibes []models.Vibe
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&vibes).Error; err != nil {
		return nil, err
	}

	details := make([]VibeDetail, 0, len(vibes))
	for _, vibe := range vibes {
		details = append(details, *s.resolveImages(ctx, vibe))
	}
	return details, nil
}

// Get returns one vibe owned by the user.
func (s *VibeService) Get(ctx context.Context, userID, vibeID uuid.UUID) (*VibeDetail, error) {
	var vibe models.Vibe
	if err := s.db.WithContext(ctx).First(&vibe, "id = ?", vibeID).Error; err != nil {
		return nil, ErrVibeNotFound
	}
	if vibe.UserID != userID {
		return nil, ErrVibeNotFound
	}
	return s.resolveImages(ctx, vibe), nil
}

// Delete removes a vibe owned by the user.
func (s *VibeService) Delete(ctx context.Context, userID, vibeID uuid.UUID) error {
	var vibe models.Vibe
	if err := s.db.WithContext(ctx).First(&vibe, "id = ?", vibeID).Error; err != nil {
		return ErrVibeNotFound
	}
	if vibe.UserID != userID {
		return ErrVibeNotFound
	}
	return s.db.WithContext(ctx).Delete(&vibe).Error
}

// resolveImages attaches the perfume image via the session's recommendation
// chain and, when the vibe has a stored outfit photo, a presigned URL for it.
func (s *VibeService) resolveImages(ctx context.Context, vibe models.Vibe) *VibeDetail {
	detail := VibeDetail{Vibe: vibe}

	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", vibe.SessionID).Error; err == nil &&
		session.RecommendedPerfumeID != nil {
		var perfume models.Perfume
		if err := s.db.WithContext(ctx).First(&perfume, "id = ?", *session.RecommendedPerfumeID).Error; err == nil {
			detail.PerfumeImageURL = perfume.ImageURL
		}
	}

	if vibe.OutfitImageKey != "" && s.store != nil {
		url, err := s.store.PresignDownload(ctx, vibe.OutfitImageKey, 15*time.Minute)
		if err != nil {
			log.Printf("[VibeService] failed to presign outfit image %s: %v", vibe.OutfitImageKey, err)
		} else {
			detail.OutfitImageURL = url
		}
	}

	return &detail
}
