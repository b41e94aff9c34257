package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aureapp/aure-backend/internal/models"
)

// FamilyDefaults carries the matching attributes a perfume gets when it is
// created from nothing but a name, house and scent family.
type FamilyDefaults struct {
	Moods            []string
	Occasions        []string
	OutfitStyles     []string
	AuraWords        []string
	IdealTemperature []models.TemperatureCategory
}

// Outfit styles here must stay within the wizard's fixed vocabulary:
// clean, minimalist, streetwear, romantic, glam, cozy, corporate.
var scentFamilyDefaults = map[models.ScentFamily]FamilyDefaults{
	models.FamilyFresh: {
		Moods:            []string{"playful", "confident"},
		Occasions:        []string{"work", "casual", "date"},
		OutfitStyles:     []string{"clean", "minimalist", "streetwear"},
		AuraWords:        []string{"Crisp", "Energizing", "Clean"},
		IdealTemperature: []models.TemperatureCategory{models.TempHot, models.TempWarm, models.TempMild},
	},
	models.FamilyFloral: {
		Moods:            []string{"soft", "playful"},
		Occasions:        []string{"date", "event", "casual"},
		OutfitStyles:     []string{"romantic", "glam", "clean"},
		AuraWords:        []string{"Romantic", "Elegant", "Graceful"},
		IdealTemperature: []models.TemperatureCategory{models.TempWarm, models.TempMild, models.TempCool},
	},
	models.FamilyWoody: {
		Moods:            []string{"confident", "mysterious"},
		Occasions:        []string{"work", "date", "event"},
		OutfitStyles:     []string{"corporate", "minimalist", "clean"},
		AuraWords:        []string{"Grounded", "Sophisticated", "Timeless"},
		IdealTemperature: []models.TemperatureCategory{models.TempMild, models.TempCool, models.TempCold},
	},
	models.FamilyAmber: {
		Moods:            []string{"confident", "mysterious"},
		Occasions:        []string{"date", "event", "home"},
		OutfitStyles:     []string{"glam", "romantic", "cozy"},
		AuraWords:        []string{"Warm", "Sensual", "Rich"},
		IdealTemperature: []models.TemperatureCategory{models.TempCool, models.TempCold},
	},
	models.FamilyGourmand: {
		Moods:            []string{"playful", "soft"},
		Occasions:        []string{"casual", "date", "home"},
		OutfitStyles:     []string{"cozy", "romantic", "streetwear"},
		AuraWords:        []string{"Comforting", "Sweet", "Inviting"},
		IdealTemperature: []models.TemperatureCategory{models.TempCool, models.TempCold, models.TempMild},
	},
	models.FamilyMusky: {
		Moods:            []string{"soft", "mysterious"},
		Occasions:        []string{"date", "casual", "home"},
		OutfitStyles:     []string{"minimalist", "clean", "cozy"},
		AuraWords:        []string{"Subtle", "Intimate", "Skin-like"},
		IdealTemperature: []models.TemperatureCategory{models.TempWarm, models.TempMild, models.TempCool},
	},
}

// DefaultsForFamily returns the attribute defaults for a scent family.
func DefaultsForFamily(family models.ScentFamily) FamilyDefaults {
	if d, ok := scentFamilyDefaults[family]; ok {
		return d
	}
	return scentFamilyDefaults[models.FamilyWoody]
}

// PerfumeService handles catalog operations
type PerfumeService struct {
	db *gorm.DB
}

func NewPerfumeService(db *gorm.DB) *PerfumeService {
	return &PerfumeService{db: db}
}

// PerfumeFilter narrows a catalog listing.
type PerfumeFilter struct {
	ScentFamily models.ScentFamily
	Performance models.Performance
}

// ListPerfumes lists catalog perfumes, optionally filtered.
func (s *PerfumeService) ListPerfumes(ctx context.Context, filter PerfumeFilter) ([]models.Perfume, error) {
	var perfumes []models.Perfume
	query := s.db.WithContext(ctx).Order("house, name")
	if filter.ScentFamily != "" {
		query = query.Where("scent_family = ?", filter.ScentFamily)
	}
	if filter.Performance != "" {
		query = query.Where("performance = ?", filter.Performance)
	}
	if err := query.Find(&perfumes).Error; err != nil {
		return nil, err
	}
	return perfumes, nil
}

// GetPerfume retrieves a catalog perfume by ID
func (s *PerfumeService) GetPerfume(ctx context.Context, id uuid.UUID) (*models.Perfume, error) {
	var perfume models.Perfume
	if err := s.db.WithContext(ctx).First(&perfume, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &perfume, nil
}

// CreatePerfume inserts a catalog entry. If a perfume with the same house and
// name already exists the existing row is returned unchanged.
func (s *PerfumeService) CreatePerfume(ctx context.Context, perfume *models.Perfume) (*models.Perfume, error) {
	var existing models.Perfume
	err := s.db.WithContext(ctx).
		Where("name = ? AND house = ?", perfume.Name, perfume.House).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	perfume.Embedding = GenerateEmbedding(perfume.Name + " " + perfume.House)
	if err := s.db.WithContext(ctx).Create(perfume).Error; err != nil {
		return nil, err
	}
	return perfume, nil
}

// SearchPerfumes searches the catalog. On postgres it combines semantic
// similarity with keyword matching; elsewhere it falls back to keyword search.
func (s *PerfumeService) SearchPerfumes(ctx context.Context, query string) ([]models.Perfume, error) {
	var perfumes []models.Perfume

	dbQuery := s.db.WithContext(ctx)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)

			subQuery := s.db.Model(&models.Perfume{}).
				Select("id, embedding <-> ? as similarity", vec).
				Where("LOWER(name) LIKE ? OR LOWER(house) LIKE ? OR LOWER(description) LIKE ?",
					like, like, like)

			dbQuery = dbQuery.Joins("JOIN (?) as search ON perfumes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			dbQuery = dbQuery.Where("LOWER(name) LIKE ? OR LOWER(house) LIKE ? OR LOWER(description) LIKE ?",
				like, like, like)
		}
	}

	if err := dbQuery.Find(&perfumes).Error; err != nil {
		return nil, err
	}
	return perfumes, nil
}
