package dto

import "github.com/campuskit/onboarding_service/internal/domain"

type PaymentInitiateRequest struct {
	PaymentType   string  `json:"payment_type"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type PaymentListResponse struct {
	Payments []domain.Payment `json:"payments"`
	Total    int              `json:"total"`
}
