package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
	"github.com/aureapp/aure-backend/internal/types"
)

var (
	ErrAlreadyInCollection = errors.New("perfume already in collection")
	ErrNotInCollection     = errors.New("perfume not found in collection")
)

// CollectionEntry joins a user's ownership record with its catalog perfume.
type CollectionEntry struct {
	models.UserPerfume
	Perfume models.Perfume `json:"perfume"`
}

// CollectionService handles a user's personal perfume collection
type CollectionService struct {
	db *gorm.DB
}

func NewCollectionService(db *gorm.DB) *CollectionService {
	return &CollectionService{db: db}
}

// GetCollection returns every entry in the user's collection with catalog
// details attached. Entries whose perfume has since been removed are skipped.
func (s *CollectionService) GetCollection(ctx context.Context, userID uuid.UUID) ([]CollectionEntry, error) {
	var entries []models.UserPerfume
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return s.attachPerfumes(ctx, entries)
}

// GetFavorites returns the favorited subset of the collection.
func (s *CollectionService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]CollectionEntry, error) {
	var entries []models.UserPerfume
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_favorite = ?", userID, true).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return s.attachPerfumes(ctx, entries)
}

// GetEntry returns one collection entry owned by the user.
func (s *CollectionService) GetEntry(ctx context.Context, userID, entryID uuid.UUID) (*CollectionEntry, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	var perfume models.Perfume
	if err := s.db.WithContext(ctx).First(&perfume, "id = ?", entry.PerfumeID).Error; err != nil {
		return nil, ErrNotInCollection
	}

	return &CollectionEntry{UserPerfume: *entry, Perfume: perfume}, nil
}

// Add puts an existing catalog perfume into the user's collection.
func (s *CollectionService) Add(ctx context.Context, userID uuid.UUID, req types.AddToCollectionRequest) (*models.UserPerfume, error) {
	var perfume models.Perfume
	if err := s.db.WithContext(ctx).First(&perfume, "id = ?", req.PerfumeID).Error; err != nil {
		return nil, err
	}

	var existing models.UserPerfume
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND perfume_id = ?", userID, req.PerfumeID).
		First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyInCollection
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	entry := models.UserPerfume{
		UserID:        userID,
		PerfumeID:     req.PerfumeID,
		Nickname:      req.Nickname,
		PersonalNotes: req.PersonalNotes,
		DislikedNotes: models.JSONBStringArray{},
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddByName adds a perfume identified only by name and house, creating the
// catalog entry with family-based defaults when it does not exist yet.
func (s *CollectionService) AddByName(ctx context.Context, userID uuid.UUID, req types.AddByNameRequest) (*models.UserPerfume, error) {
	var perfume models.Perfume
	err := s.db.WithContext(ctx).
		Where("name = ? AND house = ?", req.Name, req.House).
		First(&perfume).Error
	if err == gorm.ErrRecordNotFound {
		family := models.ParseScentFamily(req.ScentFamily)
		defaults := DefaultsForFamily(family)

		moods := req.Moods
		if len(moods) == 0 {
			moods = defaults.Moods
		}

		perfume = models.Perfume{
			Name:         req.Name,
			House:        req.House,
			ScentFamily:  family,
			Performance:  models.PerformanceBalanced,
			ImageURL:     req.ImageURL,
			Notes:        models.NotePyramid{Top: []string{}, Heart: []string{}, Base: []string{}},
			Moods:        moods,
			AuraWords:    defaults.AuraWords,
			OutfitStyles: defaults.OutfitStyles,
			Occasions:    defaults.Occasions,
			WeatherProfile: models.WeatherProfile{
				IdealTemperature: defaults.IdealTemperature,
				IdealHumidity:    []models.HumidityCategory{models.HumidityModerate},
			},
			Embedding: GenerateEmbedding(req.Name + " " + req.House),
		}
		if err := s.db.WithContext(ctx).Create(&perfume).Error; err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return s.Add(ctx, userID, types.AddToCollectionRequest{
		PerfumeID:     perfume.ID,
		PersonalNotes: req.PersonalNotes,
	})
}

// Update edits the personal fields of an owned entry. Nil fields are left
// untouched.
func (s *CollectionService) Update(ctx context.Context, userID, entryID uuid.UUID, req types.UpdateCollectionEntryRequest) (*models.UserPerfume, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Nickname != nil {
		updates["nickname"] = *req.Nickname
	}
	if req.PersonalNotes != nil {
		updates["personal_notes"] = *req.PersonalNotes
	}
	if req.DislikedNotes != nil {
		updates["disliked_notes"] = models.JSONBStringArray(*req.DislikedNotes)
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return entry, nil
}

// ToggleFavorite flips the favorite flag on an owned entry.
func (s *CollectionService) ToggleFavorite(ctx context.Context, userID, entryID uuid.UUID) (*models.UserPerfume, error) {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(entry).
		Update("is_favorite", !entry.IsFavorite).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove deletes an owned entry from the collection.
func (s *CollectionService) Remove(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(entry).Error
}

// MarkWorn increments the wear count and stamps last-worn on an owned entry.
func (s *CollectionService) MarkWorn(ctx context.Context, userID, entryID uuid.UUID, wornAt time.Time) error {
	entry, err := s.ownedEntry(ctx, userID, entryID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(entry).Updates(map[string]interface{}{
		"wear_count":   entry.WearCount + 1,
		"last_worn_at": wornAt,
	}).Error
}

func (s *CollectionService) ownedEntry(ctx context.Context, userID, entryID uuid.UUID) (*models.UserPerfume, error) {
	var entry models.UserPerfume
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", entryID).Error; err != nil {
		return nil, ErrNotInCollection
	}
	if entry.UserID != userID {
		return nil, ErrNotInCollection
	}
	return &entry, nil
}

func (s *CollectionService) attachPerfumes(ctx context.Context, entries []models.UserPerfume) ([]CollectionEntry, error) {
	result := make([]CollectionEntry, 0, len(entries))
	for _, entry := range entries {
		var perfume models.Perfume
		if err := s.db.WithContext(ctx).First(&perfume, "id = ?", entry.PerfumeID).Error; err != nil {
			// Catalog row gone, skip the orphan rather than fail the listing.
			continue
		}
		result = append(result, CollectionEntry{UserPerfume: entry, Perfume: perfume})
	}
	return result, nil
}
