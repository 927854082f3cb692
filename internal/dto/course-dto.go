package dto

import (
	"github.com/campuskit/onboarding_service/internal/domain"
	"github.com/google/uuid"
)

type CourseCreateRequest struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	Description   *string `json:"description,omitempty"`
	DurationYears int     `json:"duration_years,omitempty"`
	TotalCredits  int     `json:"total_credits,omitempty"`
}

type CourseUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type SubjectCreateRequest struct {
	CourseID   uuid.UUID `json:"course_id"`
	Name       string    `json:"name"`
	Code       string    `json:"code"`
	Credits    int       `json:"credits,omitempty"`
	Semester   int       `json:"semester,omitempty"`
	IsElective bool      `json:"is_elective,omitempty"`
}

type EnrollRequest struct {
	CourseID   uuid.UUID   `json:"course_id"`
	SubjectIDs []uuid.UUID `json:"subject_ids"`
}

type DropRequest struct {
	SubjectID uuid.UUID `json:"subject_id"`
}

type EnrollmentListResponse struct {
	Enrollments []domain.Enrollment `json:"enrollments"`
	Total       int                 `json:"total"`
}
