package types

import "github.com/google/uuid"

// RegisterRequest is the payload for account creation.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AddToCollectionRequest adds an existing catalog perfume to the caller's
// collection.
type AddToCollectionRequest struct {
	PerfumeID     uuid.UUID `json:"perfume_id" binding:"required"`
	Nickname      string    `json:"nickname"`
	PersonalNotes string    `json:"personal_notes"`
}

// AddByNameRequest adds a perfume by name/house, creating the catalog entry
// when it does not exist yet.
type AddByNameRequest struct {
	Name          string   `json:"name" binding:"required"`
	House         string   `json:"house" binding:"required"`
	ScentFamily   string   `json:"scent_family"`
	ImageURL      string   `json:"image_url"`
	Moods         []string `json:"moods"`
	PersonalNotes string   `json:"personal_notes"`
}

// UpdateCollectionEntryRequest edits the personal fields of a collection
// entry. Nil pointers leave the field untouched.
type UpdateCollectionEntryRequest struct {
	Nickname      *string   `json:"nickname"`
	PersonalNotes *string   `json:"personal_notes"`
	DislikedNotes *[]string `json:"disliked_notes"`
}

// WeatherInput is the optional weather context supplied with a session.
type WeatherInput struct {
	Temperature         float64 `json:"temperature"`
	TemperatureCategory string  `json:"temperature_category" binding:"required"`
	Humidity            float64 `json:"humidity"`
	HumidityCategory    string  `json:"humidity_category"`
	Condition           string  `json:"condition"`
	Location            string  `json:"location"`
	IsManual            bool    `json:"is_manual"`
}

// CreateSessionRequest collects the ritual wizard's context.
type CreateSessionRequest struct {
	OutfitStyles    []string      `json:"outfit_styles"`
	Mood            string        `json:"mood" binding:"required"`
	ScentDirections []string      `json:"scent_directions" binding:"required"`
	Occasion        string        `json:"occasion" binding:"required"`
	Weather         *WeatherInput `json:"weather"`
}

// LogWearRequest appends a wear-log entry.
type LogWearRequest struct {
	PerfumeID uuid.UUID  `json:"perfume_id" binding:"required"`
	SessionID *uuid.UUID `json:"session_id"`
	VibeID    *uuid.UUID `json:"vibe_id"`
	Notes     string     `json:"notes"`
}

// SaveVibeRequest snapshots a completed session as a named vibe.
type SaveVibeRequest struct {
	SessionID      uuid.UUID `json:"session_id" binding:"required"`
	Name           string    `json:"name" binding:"required"`
	Notes          string    `json:"notes"`
	OutfitImageKey string    `json:"outfit_image_key"`
}

// UpsertPreferencesRequest creates or patches the caller's preferences.
// Nil pointers leave the stored value untouched.
type UpsertPreferencesRequest struct {
	ScentPreferences  *[]string        `json:"scent_preferences"`
	AvoidNotes        *[]string        `json:"avoid_notes"`
	DefaultLocation   *LocationInput   `json:"default_location"`
	UseWeatherContext *bool            `json:"use_weather_context"`
}

// LocationInput is a default location for weather lookups.
type LocationInput struct {
	City    string  `json:"city" binding:"required"`
	Country string  `json:"country" binding:"required"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// AnalyzeOutfitRequest asks the AI collaborator to read an outfit from a
// photo or a text description. Exactly one of the two should be set.
type AnalyzeOutfitRequest struct {
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Description string `json:"description"`
}
