package dto

import "github.com/campuskit/onboarding_service/internal/domain"

type HostelApplyRequest struct {
	RoomTypePreference  domain.RoomType `json:"room_type_preference"`
	SpecialRequirements *string         `json:"special_requirements,omitempty"`
}

type HostelProcessRequest struct {
	Status              domain.HostelStatus `json:"status"`
	AllocatedRoomNumber *string             `json:"allocated_room_number,omitempty"`
	AllocatedBlock      *string             `json:"allocated_block,omitempty"`
	Floor               *int                `json:"floor,omitempty"`
	AdminNotes          *string             `json:"admin_notes,omitempty"`
}
