package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPerfume is a user's personal ownership record of a catalog perfume.
// One row exists per (user, perfume) pair.
type UserPerfume struct {
	ID            uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_user_perfume;index" json:"user_id"`
	PerfumeID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_user_perfume" json:"perfume_id"`
	Nickname      string           `gorm:"size:100" json:"nickname,omitempty"`
	PersonalNotes string           `gorm:"type:text" json:"personal_notes,omitempty"`
	DislikedNotes JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"disliked_notes"`
	IsFavorite    bool             `gorm:"not null;default:false;index:idx_user_favorite" json:"is_favorite"`
	WearCount     int              `gorm:"not null;default:0" json:"wear_count"`
	LastWornAt    *time.Time       `json:"last_worn_at,omitempty"`
}

func (UserPerfume) TableName() string {
	return "user_perfumes"
}

func (up *UserPerfume) BeforeCreate(tx *gorm.DB) error {
	if up.ID == uuid.Nil {
		up.ID = uuid.New()
	}
	return nil
}
