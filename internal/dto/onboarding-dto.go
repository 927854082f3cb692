package dto

import "github.com/campuskit/onboarding_service/internal/domain"

type ProgressResponse struct {
	Items      []domain.ChecklistItemView `json:"items"`
	Percentage int                        `json:"percentage"`
	Total      int                        `json:"total"`
	Completed  int                        `json:"completed"`
}

type DashboardDocuments struct {
	Total       int `json:"total"`
	Approved    int `json:"approved"`
	Pending     int `json:"pending"`
	Rejected    int `json:"rejected"`
	UnderReview int `json:"under_review"`
}

type DashboardPayments struct {
	Status       string  `json:"status"` // completed | pending | none
	TotalPaid    float64 `json:"total_paid"`
	TotalPending float64 `json:"total_pending"`
	Count        int     `json:"count"`
}

type DashboardHostel struct {
	Status     string  `json:"status"` // application status or not_applied
	RoomType   *string `json:"room_type,omitempty"`
	RoomNumber *string `json:"room_number,omitempty"`
}

type DashboardLMS struct {
	Status   string  `json:"status"` // activated | inactive
	LMSID    *string `json:"lms_id,omitempty"`
	Platform string  `json:"platform"`
}

type DashboardUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type DashboardSummary struct {
	Documents            DashboardDocuments `json:"documents"`
	Payments             DashboardPayments  `json:"payments"`
	Hostel               DashboardHostel    `json:"hostel"`
	LMS                  DashboardLMS       `json:"lms"`
	EnrollmentCount      int                `json:"enrollment_count"`
	OnboardingPercentage int                `json:"onboarding_percentage"`
	Checklist            ProgressResponse   `json:"checklist"`
	User                 DashboardUser      `json:"user"`
}
