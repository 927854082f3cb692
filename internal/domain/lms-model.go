package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LMSActivation: at most one per user.
type LMSActivation struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UniversityID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"university_id"`
	Platform      string     `gorm:"type:varchar(100);default:'Moodle'" json:"platform"`
	IsActivated   bool       `gorm:"default:false" json:"is_activated"`
	LMSUsername   *string    `gorm:"type:varchar(255)" json:"lms_username,omitempty"`
	ActivationKey *string    `gorm:"type:varchar(255)" json:"activation_key,omitempty"`
	ActivatedAt   *time.Time `json:"activated_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *LMSActivation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
