package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/recommend"
	"github.com/aureapp/aure-backend/internal/types"
)

// WearLogService records worn fragrances and derives analytics from the log.
type WearLogService struct {
	db         *gorm.DB
	collection *CollectionService
}

func NewWearLogService(db *gorm.DB, collection *CollectionService) *WearLogService {
	return &WearLogService{db: db, collection: collection}
}

// LogWear appends a wear entry. Perfume name, house and family are snapshotted
// from the catalog so the history stays readable after catalog edits. The
// matching collection entry, if one exists, gets its wear counters bumped in
// the same call.
func (s *WearLogService) LogWear(ctx context.Context, userID uuid.UUID, req types.LogWearRequest) (*models.WearLogEntry, error) {
	var perfume models.Perfume
	if err := s.db.WithContext(ctx).First(&perfume, "id = ?", req.PerfumeID).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	entry := models.WearLogEntry{
		UserID:       userID,
		PerfumeID:    perfume.ID,
		PerfumeName:  perfume.Name,
		PerfumeHouse: perfume.House,
		ScentFamily:  perfume.ScentFamily,
		SessionID:    req.SessionID,
		VibeID:       req.VibeID,
		Notes:        req.Notes,
		WornAt:       now,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	// Wearing a perfume you own also updates the collection counters. Not
	// owning it is fine, the log entry stands alone.
	var owned models.UserPerfume
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND perfume_id = ?", userID, perfume.ID).
		First(&owned).Error
	if err == nil {
		if err := s.collection.MarkWorn(ctx, userID, owned.ID, now); err != nil {
			return nil, err
		}
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return &entry, nil
}

// History returns the user's wear entries, most recent first.
func (s *WearLogService) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.WearLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []models.WearLogEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("worn_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Stats summarizes the user's full wear history.
func (s *WearLogService) Stats(ctx context.Context, userID uuid.UUID) (recommend.WearStats, error) {
	var entries []models.WearLogEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&entries).Error; err != nil {
		return recommend.WearStats{}, err
	}
	return recommend.SummarizeWear(entries, time.Now()), nil
}
