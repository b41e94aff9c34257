package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vibe is a user-named snapshot of a completed session. Perfume identity and
// session context are denormalized on purpose: the saved vibe should read the
// same even if the catalog entry is later edited or removed.
type Vibe struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_vibe_user_created" json:"created_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;index:idx_vibe_user_created" json:"user_id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null" json:"session_id"`

	Name           string           `gorm:"size:100;not null" json:"name"`
	Notes          string           `gorm:"type:text" json:"notes,omitempty"`
	HasImage       bool             `gorm:"not null;default:false" json:"has_image"`
	OutfitImageKey string           `gorm:"size:255" json:"-"`
	PerfumeName    string           `gorm:"size:255;not null" json:"perfume_name"`
	PerfumeHouse   string           `gorm:"size:255;not null" json:"perfume_house"`
	ScentFamily    string           `gorm:"size:50;not null" json:"scent_family"`
	AuraWords      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"aura_words"`
	Mood           string           `gorm:"size:50;not null" json:"mood"`
	Occasion       string           `gorm:"size:50;not null" json:"occasion"`
}

func (v *Vibe) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
