package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WearLogEntry is an append-only record of "user wore perfume X at time T".
// Name, house and family are denormalized snapshots so wear history survives
// later catalog edits.
type WearLogEntry struct {
	ID           uuid.UUID   `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index;index:idx_wear_user_date" json:"user_id"`
	PerfumeID    uuid.UUID   `gorm:"type:uuid;not null" json:"perfume_id"`
	PerfumeName  string      `gorm:"size:255;not null" json:"perfume_name"`
	PerfumeHouse string      `gorm:"size:255" json:"perfume_house,omitempty"`
	ScentFamily  ScentFamily `gorm:"size:20" json:"scent_family,omitempty"`
	SessionID    *uuid.UUID  `gorm:"type:uuid" json:"session_id,omitempty"`
	VibeID       *uuid.UUID  `gorm:"type:uuid" json:"vibe_id,omitempty"`
	Notes        string      `gorm:"type:text" json:"notes,omitempty"`
	WornAt       time.Time   `gorm:"not null;index:idx_wear_user_date" json:"worn_at"`
}

func (WearLogEntry) TableName() string {
	return "wear_log"
}

func (e *WearLogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
