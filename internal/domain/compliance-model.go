package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplianceType string

const (
	ComplianceTypeDeclaration     ComplianceType = "declaration"
	ComplianceTypeVideo           ComplianceType = "video"
	ComplianceTypeDocument        ComplianceType = "document"
	ComplianceTypeAcknowledgement ComplianceType = "acknowledgement"
)

func (c ComplianceType) Valid() bool {
	switch c {
	case ComplianceTypeDeclaration, ComplianceTypeVideo, ComplianceTypeDocument, ComplianceTypeAcknowledgement:
		return true
	}
	return false
}

type ComplianceItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UniversityID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"university_id"`
	Title          string         `gorm:"type:varchar(255);not null" json:"title"`
	Description    *string        `gorm:"type:text" json:"description,omitempty"`
	ComplianceType ComplianceType `gorm:"type:varchar(30);not null" json:"compliance_type"`
	ContentURL     *string        `gorm:"type:varchar(512)" json:"content_url,omitempty"`
	Order          int            `gorm:"column:item_order;default:0" json:"order"`
	IsRequired     bool           `gorm:"default:true" json:"is_required"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *ComplianceItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// StudentCompliance records one user's completion of one item.
type StudentCompliance struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_compliance" json:"user_id"`
	ComplianceItemID uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:uq_student_compliance" json:"compliance_item_id"`
	UniversityID     uuid.UUID  `gorm:"type:uuid;not null" json:"university_id"`
	IsCompleted      bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	ComplianceItem *ComplianceItem `gorm:"foreignKey:ComplianceItemID" json:"compliance_item,omitempty"`
}

func (s *StudentCompliance) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
