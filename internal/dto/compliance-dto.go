package dto

import (
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
)

type ComplianceItemCreateRequest struct {
	Title          string                `json:"title"`
	Description    *string               `json:"description,omitempty"`
	ComplianceType domain.ComplianceType `json:"compliance_type"`
	ContentURL     *string               `json:"content_url,omitempty"`
	Order          int                   `json:"order,omitempty"`
	IsRequired     *bool                 `json:"is_required,omitempty"`
}

type ComplianceItemUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ContentURL  *string `json:"content_url,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsRequired  *bool   `json:"is_required,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type ComplianceSubmitRequest struct {
	ComplianceItemID uuid.UUID `json:"compliance_item_id"`
}

// ComplianceStatusItem pairs an item with the student's completion state.
type ComplianceStatusItem struct {
	Item        domain.ComplianceItem `json:"item"`
	IsCompleted bool                  `json:"is_completed"`
}

type ComplianceStatusResponse struct {
	Items     []ComplianceStatusItem `json:"items"`
	Completed int                    `json:"completed"`
	Total     int                    `json:"total"`
}
