package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProgressSnapshot is an append-only audit of the computed onboarding
// checklist. The checklist itself is always recomputed from entity state;
// snapshots are written only when the percentage changes and are never read
// back into the computation.
type ProgressSnapshot struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	UniversityID uuid.UUID      `gorm:"type:uuid;not null;index" json:"university_id"`
	Percentage   int            `gorm:"not null" json:"percentage"`
	Completed    int            `gorm:"not null" json:"completed"`
	Total        int            `gorm:"not null" json:"total"`
	Items        datatypes.JSON `json:"items"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

func (p *ProgressSnapshot) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
