package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// University is the tenant. Every student-facing row is scoped to one.
type University struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug           string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	Domain         string         `gorm:"type:varchar(255)" json:"domain,omitempty"`
	LogoURL        *string        `gorm:"type:varchar(512)" json:"logo_url,omitempty"`
	PrimaryColor   string         `gorm:"type:varchar(7);default:'#6366F1'" json:"primary_color"`
	SecondaryColor string         `gorm:"type:varchar(7);default:'#8B5CF6'" json:"secondary_color"`
	Description    *string        `gorm:"type:text" json:"description,omitempty"`
	Features       datatypes.JSON `json:"features,omitempty"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	MaxStudents    int            `gorm:"default:100" json:"max_students"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *University) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
