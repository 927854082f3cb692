package dto

import (
	"time"

	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
)

type DocumentReviewRequest struct {
	Status          domain.DocumentStatus `json:"status"`
	RejectionReason string                `json:"rejection_reason,omitempty"`
}

type DocumentUploadResponse struct {
	ID           uuid.UUID             `json:"id"`
	DocumentType string                `json:"document_type"`
	FileName     string                `json:"file_name"`
	FileURL      string                `json:"file_url"`
	Status       domain.DocumentStatus `json:"status"`
	CreatedAt    time.Time             `json:"created_at"`
}

type DocumentListResponse struct {
	Documents []domain.Document `json:"documents"`
	Total     int               `json:"total"`
}
