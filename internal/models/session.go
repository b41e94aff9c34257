package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeatherSnapshot is the point-in-time weather context attached to a session.
// Raw readings are display-only; scoring consumes the categories.
type WeatherSnapshot struct {
	Temperature         float64             `json:"temperature,omitempty"`
	TemperatureCategory TemperatureCategory `json:"temperature_category"`
	Humidity            float64             `json:"humidity,omitempty"`
	HumidityCategory    HumidityCategory    `json:"humidity_category,omitempty"`
	Condition           string              `json:"condition,omitempty"`
	Location            string              `json:"location,omitempty"`
	IsManual            bool                `json:"is_manual"`
}

func (w WeatherSnapshot) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeatherSnapshot) Scan(value interface{}) error {
	return scanJSON(value, w)
}

// Session is one recommendation request-and-result pair. The outcome fields
// (RecommendedPerfumeID through CompletedAt) are either all set or all empty;
// a session without them is a valid "no recommendation yet" state.
type Session struct {
	ID        uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time      `gorm:"index:idx_session_user_date" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index;index:idx_session_user_date" json:"user_id"`

	OutfitStyles    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"outfit_styles"`
	Mood            string           `gorm:"size:50;not null" json:"mood"`
	ScentDirections JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"scent_directions"`
	Occasion        string           `gorm:"size:50;not null" json:"occasion"`
	Weather         *WeatherSnapshot `gorm:"type:jsonb" json:"weather,omitempty"`

	RecommendedPerfumeID *uuid.UUID `gorm:"type:uuid" json:"recommended_perfume_id,omitempty"`
	RecommendationType   string     `gorm:"size:30" json:"recommendation_type,omitempty"`
	MatchScore           *float64   `json:"match_score,omitempty"`
	EditorialExplanation string     `gorm:"type:text" json:"editorial_explanation,omitempty"`
	Affirmation          string     `gorm:"size:255" json:"affirmation,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Completed reports whether the session carries a recommendation outcome.
func (s *Session) Completed() bool {
	return s.CompletedAt != nil
}
