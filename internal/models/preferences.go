package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a user's default location for weather lookups.
type Location struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// UserPreference holds per-user settings, upserted on every settings change.
type UserPreference struct {
	ID                uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	UserID            uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	ScentPreferences  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"scent_preferences"`
	AvoidNotes        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"avoid_notes"`
	DefaultLocation   *Location        `gorm:"type:jsonb" json:"default_location,omitempty"`
	UseWeatherContext bool             `gorm:"not null;default:true" json:"use_weather_context"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

func (p *UserPreference) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
