package service

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/types"
)

var ErrSessionNotFound = errors.New("session not found")

// CopyGenerator produces editorial copy for a recommendation. Implementations
// may call an external model; a nil generator means template copy only.
type CopyGenerator interface {
	GenerateCopy(ctx context.Context, perfume models.Perfume, mood, occasion string, weather models.TemperatureCategory) (explanation, affirmation string, err error)
}

// SessionDetail is a session with its recommended perfume attached when one
// exists.
type SessionDetail struct {
	models.Session
	Perfume *models.Perfume `json:"perfume,omitempty"`
}

// SessionService orchestrates the fit-check ritual: it records the context,
// ranks the user's collection and attaches the winning recommendation.
type SessionService struct {
	db        *gorm.DB
	config    recommend.Config
	editorial CopyGenerator
	rng       *rand.Rand
}

func NewSessionService(db *gorm.DB, config recommend.Config, editorial CopyGenerator, rng *rand.Rand) *SessionService {
	return &SessionService{
		db:        db,
		config:    config,
		editorial: editorial,
		rng:       rng,
	}
}

// CreateWithRecommendation creates a session and runs the recommendation in
// one step. With an empty collection the session is persisted without an
// outcome so the client can prompt the user to add perfumes first.
func (s *SessionService) CreateWithRecommendation(ctx context.Context, userID uuid.UUID, req types.CreateSessionRequest) (*SessionDetail, error) {
	session := models.Session{
		UserID:          userID,
		OutfitStyles:    models.JSONBStringArray(req.OutfitStyles),
		Mood:            req.Mood,
		ScentDirections: models.JSONBStringArray(req.ScentDirections),
		Occasion:        req.Occasion,
	}
	if req.Weather != nil {
		session.Weather = &models.WeatherSnapshot{
			Temperature:         req.Weather.Temperature,
			TemperatureCategory: models.TemperatureCategory(req.Weather.TemperatureCategory),
			Humidity:            req.Weather.Humidity,
			HumidityCategory:    models.HumidityCategory(req.Weather.HumidityCategory),
			Condition:           req.Weather.Condition,
			Location:            req.Weather.Location,
			IsManual:            req.Weather.IsManual,
		}
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}

	candidates, err := s.loadCandidates(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		log.Printf("[SessionService] user %s has an empty collection, session %s left without recommendation", userID, session.ID)
		return &SessionDetail{Session: session}, nil
	}

	rctx := recommend.Context{
		Mood:         req.Mood,
		Occasion:     req.Occasion,
		OutfitStyles: req.OutfitStyles,
	}
	for _, d := range req.ScentDirections {
		rctx.ScentDirections = append(rctx.ScentDirections, models.ScentFamily(d))
	}
	if session.Weather != nil {
		rctx.WeatherBucket = session.Weather.TemperatureCategory
	}

	now := time.Now()
	top := s.config.Rank(rctx, candidates, now, s.rng)
	if top == nil {
		return &SessionDetail{Session: session}, nil
	}

	matchType := s.config.Classify(top.Score)
	explanation, affirmation := s.composeCopy(ctx, top.Candidate.Perfume, req.Mood, req.Occasion, rctx.WeatherBucket)

	score := top.Score
	updates := map[string]interface{}{
		"recommended_perfume_id": top.Candidate.Perfume.ID,
		"recommendation_type":    string(matchType),
		"match_score":            score,
		"editorial_explanation":  explanation,
		"affirmation":            affirmation,
		"completed_at":           now,
	}
	if err := s.db.WithContext(ctx).Model(&session).Updates(updates).Error; err != nil {
		return nil, err
	}

	session.RecommendedPerfumeID = &top.Candidate.Perfume.ID
	session.RecommendationType = string(matchType)
	session.MatchScore = &score
	session.EditorialExplanation = explanation
	session.Affirmation = affirmation
	session.CompletedAt = &now

	perfume := top.Candidate.Perfume
	return &SessionDetail{Session: session, Perfume: &perfume}, nil
}

// GetSession returns one session owned by the user.
func (s *SessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDetail, error) {
	var session models.Session
	if err := s.db.WithContext(ctx).First(&session, "id = ?", sessionID).Error; err != nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return s.withPerfume(ctx, session), nil
}

// History returns the user's most recent sessions, newest first.
func (s *SessionService) History(ctx context.Context, userID uuid.UUID, limit int) ([]SessionDetail, error) {
	if limit <= 0 {
		limit = 10
	}

	var sessions []models.Session
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	details := make([]SessionDetail, 0, len(sessions))
	for _, session := range sessions {
		details = append(details, *s.withPerfume(ctx, session))
	}
	return details, nil
}

// TodaySession returns the user's latest session if it was completed today,
// nil otherwise.
func (s *SessionService) TodaySession(ctx context.Context, userID uuid.UUID) (*SessionDetail, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&session).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if session.CreatedAt.Before(startOfDay) || !session.Completed() {
		return nil, nil
	}
	return s.withPerfume(ctx, session), nil
}

func (s *SessionService) loadCandidates(ctx context.Context, userID uuid.UUID) ([]recommend.Candidate, error) {
	var entries []models.UserPerfume
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		return nil, err
	}

	candidates := make([]recommend.Candidate, 0, len(entries))
	for _, entry := range entries {
		var perfume models.Perfume
		if err := s.db.WithContext(ctx).First(&perfume, "id = ?", entry.PerfumeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[SessionService] collection entry %s references missing perfume %s, skipping", entry.ID, entry.PerfumeID)
				continue
			}
			return nil, err
		}
		candidates = append(candidates, recommend.Candidate{Entry: entry, Perfume: perfume})
	}
	return candidates, nil
}

// composeCopy asks the AI collaborator for editorial copy and falls back to
// the template composer when the call is unavailable or fails.
func (s *SessionService) composeCopy(ctx context.Context, perfume models.Perfume, mood, occasion string, weather models.TemperatureCategory) (string, string) {
	if s.editorial != nil {
		explanation, affirmation, err := s.editorial.GenerateCopy(ctx, perfume, mood, occasion, weather)
		if err == nil && explanation != "" && affirmation != "" {
			return explanation, affirmation
		}
		if err != nil {
			log.Printf("[SessionService] editorial generation failed, using template copy: %v", err)
		}
	}

	copy := recommend.Compose(perfume.Name, perfume.ScentFamily, mood, occasion, weather)
	return copy.Explanation, copy.Affirmation
}

func (s *SessionService) withPerfume(ctx context.Context, session models.Session) *SessionDetail {
	detail := SessionDetail{Session: session}
	if session.RecommendedPerfumeID != nil {
		var perfume models.Perfume
		if err := s.db.WithContext(ctx).First(&perfume, "id = ?", *session.RecommendedPerfumeID).Error; err == nil {
			detail.Perfume = &perfume
		}
	}
	return &detail
}
