package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/types"
)

// PreferenceService manages per-user settings.
type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// Get returns the user's preferences, creating the default row on first
// access so callers always get a value back.
func (s *PreferenceService) Get(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error) {
	var prefs models.UserPreference
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err == gorm.ErrRecordNotFound {
		prefs = models.UserPreference{
			UserID:            userID,
			ScentPreferences:  models.JSONBStringArray{},
			AvoidNotes:        models.JSONBStringArray{},
			UseWeatherContext: true,
		}
		if err := s.db.WithContext(ctx).Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Upsert creates or patches the user's preferences. Nil fields are left
// untouched.
func (s *PreferenceService) Upsert(ctx context.Context, userID uuid.UUID, req types.UpsertPreferencesRequest) (*models.UserPreference, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ScentPreferences != nil {
		updates["scent_preferences"] = models.JSONBStringArray(*req.ScentPreferences)
	}
	if req.AvoidNotes != nil {
		updates["avoid_notes"] = models.JSONBStringArray(*req.AvoidNotes)
	}
	if req.DefaultLocation != nil {
		updates["default_location"] = &models.Location{
			City:    req.DefaultLocation.City,
			Country: req.DefaultLocation.Country,
			Lat:     req.DefaultLocation.Lat,
			Lon:     req.DefaultLocation.Lon,
		}
	}
	if req.UseWeatherContext != nil {
		updates["use_weather_context"] = *req.UseWeatherContext
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(prefs).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, userID)
}

// ToggleWeatherContext flips the weather-context switch.
func (s *PreferenceService) ToggleWeatherContext(ctx context.Context, userID uuid.UUID) (*models.UserPreference, error) {
	prefs, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(prefs).
		Update("use_weather_context", !prefs.UseWeatherContext).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, userID)
}
