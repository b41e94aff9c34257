package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// ScentFamily is one of the six fixed aroma categories used throughout
// scoring and filtering.
type ScentFamily string

const (
	FamilyFresh    ScentFamily = "fresh"
	FamilyFloral   ScentFamily = "floral"
	FamilyWoody    ScentFamily = "woody"
	FamilyAmber    ScentFamily = "amber"
	FamilyGourmand ScentFamily = "gourmand"
	FamilyMusky    ScentFamily = "musky"
)

// ScentFamilies lists every valid family value.
var ScentFamilies = []ScentFamily{
	FamilyFresh, FamilyFloral, FamilyWoody, FamilyAmber, FamilyGourmand, FamilyMusky,
}

// ParseScentFamily validates a free-form family string. Unknown values fall
// back to woody so user-supplied catalog entries still score sensibly.
func ParseScentFamily(s string) ScentFamily {
	for _, f := range ScentFamilies {
		if ScentFamily(s) == f {
			return f
		}
	}
	return FamilyWoody
}

// Performance describes how loudly a perfume projects.
type Performance string

const (
	PerformanceOfficeSafe Performance = "office-safe"
	PerformanceBalanced   Performance = "balanced"
	PerformanceLoud       Performance = "loud"
)

// TemperatureCategory is a coarse bucket derived from a Celsius reading.
type TemperatureCategory string

const (
	TempHot  TemperatureCategory = "hot"
	TempWarm TemperatureCategory = "warm"
	TempMild TemperatureCategory = "mild"
	TempCool TemperatureCategory = "cool"
	TempCold TemperatureCategory = "cold"
)

// HumidityCategory is a coarse bucket derived from a relative-humidity percent.
type HumidityCategory string

const (
	HumidityDry      HumidityCategory = "dry"
	HumidityModerate HumidityCategory = "moderate"
	HumidityHumid    HumidityCategory = "humid"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// NotePyramid holds the ordered note structure of a perfume.
type NotePyramid struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

func (n NotePyramid) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *NotePyramid) Scan(value interface{}) error {
	return scanJSON(value, n)
}

// WeatherProfile describes the conditions a perfume performs best in.
// Boost values are score modifiers in the -2..+2 range.
type WeatherProfile struct {
	IdealTemperature []TemperatureCategory `json:"ideal_temperature"`
	IdealHumidity    []HumidityCategory    `json:"ideal_humidity"`
	TemperatureBoost float64               `json:"temperature_boost,omitempty"`
	HumidityBoost    float64               `json:"humidity_boost,omitempty"`
}

func (w WeatherProfile) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeatherProfile) Scan(value interface{}) error {
	return scanJSON(value, w)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}
	return json.Unmarshal(bytes, dest)
}

// Perfume is a shared catalog entry available to all users.
type Perfume struct {
	ID                   uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	DeletedAt            gorm.DeletedAt   `gorm:"index" json:"-"`
	Name                 string           `gorm:"size:255;not null;uniqueIndex:idx_house_name" json:"name"`
	House                string           `gorm:"size:255;not null;uniqueIndex:idx_house_name" json:"house"`
	ScentFamily          ScentFamily      `gorm:"size:20;not null;index" json:"scent_family"`
	SecondaryScentFamily ScentFamily      `gorm:"size:20" json:"secondary_scent_family,omitempty"`
	Performance          Performance      `gorm:"size:20;not null;index" json:"performance"`
	Notes                NotePyramid      `gorm:"type:jsonb;not null;default:'{}'" json:"notes"`
	AuraWords            JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"aura_words"`
	OutfitStyles         JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"outfit_styles"`
	Occasions            JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"occasions"`
	Moods                JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"moods"`
	WeatherProfile       WeatherProfile   `gorm:"type:jsonb;not null;default:'{}'" json:"weather_profile"`
	Description          string           `gorm:"type:text" json:"description,omitempty"`
	ImageURL             string           `gorm:"size:255" json:"image_url,omitempty"`
	Embedding            pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

func (p *Perfume) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
