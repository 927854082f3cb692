package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
)

func (r RoomType) Valid() bool {
	switch r {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeTriple:
		return true
	}
	return false
}

type HostelStatus string

const (
	HostelStatusPending   HostelStatus = "pending"
	HostelStatusApproved  HostelStatus = "approved"
	HostelStatusRejected  HostelStatus = "rejected"
	HostelStatusAllocated HostelStatus = "allocated"
	HostelStatusCancelled HostelStatus = "cancelled"
)

func (s HostelStatus) Valid() bool {
	switch s {
	case HostelStatusPending, HostelStatusApproved, HostelStatusRejected, HostelStatusAllocated, HostelStatusCancelled:
		return true
	}
	return false
}

// HostelApplication: at most one per user.
type HostelApplication struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UniversityID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"university_id"`
	RoomTypePreference  RoomType     `gorm:"type:varchar(20);not null" json:"room_type_preference"`
	Status              HostelStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AllocatedRoomNumber *string      `gorm:"type:varchar(50)" json:"allocated_room_number,omitempty"`
	AllocatedBlock      *string      `gorm:"type:varchar(50)" json:"allocated_block,omitempty"`
	Floor               *int         `json:"floor,omitempty"`
	SpecialRequirements *string      `gorm:"type:text" json:"special_requirements,omitempty"`
	AdminNotes          *string      `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedBy         *uuid.UUID   `gorm:"type:uuid" json:"processed_by,omitempty"`
	ProcessedAt         *time.Time   `json:"processed_at,omitempty"`
	CreatedAt           time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (h *HostelApplication) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
