package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100)" json:"last_name"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	AvatarURL    *string    `gorm:"type:varchar(512)" json:"avatar_url,omitempty"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	UniversityID *uuid.UUID `gorm:"type:uuid;index" json:"university_id,omitempty"` // nil for superadmins
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	University *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

func (u *User) TenantID() uuid.UUID {
	if u.UniversityID == nil {
		return uuid.Nil
	}
	return *u.UniversityID
}
