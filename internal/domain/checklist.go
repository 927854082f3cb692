package domain

import (
	"fmt"
	"math"
)

// RequiredDocumentTypes is the canonical set counted by the documents_upload
// and documents_approved slots. Duplicate uploads of one type count once.
var RequiredDocumentTypes = []string{
	"10th_marksheet",
	"12th_marksheet",
	"aadhar_card",
	"photo",
}

// OnboardingSnapshot is the read-only view of a student's cross-entity state
// that feeds the checklist. It must be loaded within a single transaction so
// sibling writes from one logical update are either all visible or all not.
type OnboardingSnapshot struct {
	FirstName string
	LastName  string
	Phone     string

	Documents   []Document
	Payments    []Payment
	Hostel      *HostelApplication
	LMS         *LMSActivation
	Enrollments []Enrollment // active only

	ComplianceDone  int // completed required items
	ComplianceTotal int // required items configured for the university
}

type ChecklistItemView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Order       int    `json:"order"`
	IsCompleted bool   `json:"is_completed"`
	IsRequired  bool   `json:"is_required"`
}

type ChecklistResult struct {
	Items      []ChecklistItemView `json:"items"`
	Percentage int                 `json:"percentage"`
	Total      int                 `json:"total"`
	Completed  int                 `json:"completed"`
}

// checklistSlot is one fixed onboarding requirement. Each read evaluates the
// slot's predicates against the snapshot; nothing is persisted.
type checklistSlot struct {
	id       string
	title    string
	category string
	order    int
	required func(s *OnboardingSnapshot) bool
	done     func(s *OnboardingSnapshot) bool
	describe func(s *OnboardingSnapshot) string
}

func always(*OnboardingSnapshot) bool { return true }
func never(*OnboardingSnapshot) bool  { return false }

var checklistSlots = []checklistSlot{
	{
		id:       "profile",
		title:    "Complete your profile",
		category: "profile",
		order:    1,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return s.FirstName != "" && s.LastName != "" && s.Phone != ""
		},
		describe: func(s *OnboardingSnapshot) string {
			return "Add your name, phone number, and personal details"
		},
	},
	{
		id:       "documents_upload",
		title:    "Upload required documents",
		category: "documents",
		order:    2,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return s.uploadedRequiredTypes() >= len(RequiredDocumentTypes)
		},
		describe: func(s *OnboardingSnapshot) string {
			return fmt.Sprintf("%d/%d required documents uploaded", s.uploadedRequiredTypes(), len(RequiredDocumentTypes))
		},
	},
	{
		id:       "documents_approved",
		title:    "Documents verified by admin",
		category: "documents",
		order:    3,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return s.approvedRequiredTypes() >= len(RequiredDocumentTypes)
		},
		describe: func(s *OnboardingSnapshot) string {
			return fmt.Sprintf("%d/%d documents approved", s.approvedRequiredTypes(), len(RequiredDocumentTypes))
		},
	},
	{
		id:       "payment",
		title:    "Pay admission fees",
		category: "payments",
		order:    4,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return len(s.completedPayments()) > 0
		},
		describe: func(s *OnboardingSnapshot) string {
			completed := s.completedPayments()
			if len(completed) == 0 {
				return "No payments made yet"
			}
			var total float64
			for _, p := range completed {
				total += p.Amount
			}
			return fmt.Sprintf("₹%.0f paid", total)
		},
	},
	{
		id:       "hostel",
		title:    "Apply for hostel",
		category: "hostel",
		order:    5,
		required: never, // optional: never moves the percentage
		done: func(s *OnboardingSnapshot) bool {
			return s.Hostel != nil
		},
		describe: func(s *OnboardingSnapshot) string {
			if s.Hostel == nil {
				return "Not applied yet"
			}
			return fmt.Sprintf("Status: %s", s.Hostel.Status)
		},
	},
	{
		id:       "lms",
		title:    "Activate LMS access",
		category: "lms",
		order:    6,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return s.LMS != nil && s.LMS.IsActivated
		},
		describe: func(s *OnboardingSnapshot) string {
			if s.LMS != nil && s.LMS.IsActivated && s.LMS.ActivationKey != nil {
				return fmt.Sprintf("LMS ID: %s", *s.LMS.ActivationKey)
			}
			return "Not activated yet"
		},
	},
	{
		id:       "course_enrollment",
		title:    "Enroll in courses",
		category: "courses",
		order:    7,
		required: always,
		done: func(s *OnboardingSnapshot) bool {
			return len(s.Enrollments) > 0
		},
		describe: func(s *OnboardingSnapshot) string {
			if len(s.Enrollments) == 0 {
				return "Select your course and subjects"
			}
			return fmt.Sprintf("%d subjects enrolled", len(s.Enrollments))
		},
	},
	{
		id:       "compliance",
		title:    "Complete compliance training",
		category: "compliance",
		order:    8,
		// Counts toward the denominator only when the university has
		// configured at least one required item; otherwise vacuous.
		required: func(s *OnboardingSnapshot) bool {
			return s.ComplianceTotal > 0
		},
		done: func(s *OnboardingSnapshot) bool {
			return s.ComplianceTotal > 0 && s.ComplianceDone >= s.ComplianceTotal
		},
		describe: func(s *OnboardingSnapshot) string {
			if s.ComplianceTotal == 0 {
				return "No compliance items configured"
			}
			return fmt.Sprintf("%d/%d items completed", s.ComplianceDone, s.ComplianceTotal)
		},
	},
}

func (s *OnboardingSnapshot) uploadedRequiredTypes() int {
	return countRequiredTypes(s.Documents, func(Document) bool { return true })
}

func (s *OnboardingSnapshot) approvedRequiredTypes() int {
	return countRequiredTypes(s.Documents, func(d Document) bool { return d.Status == DocumentStatusApproved })
}

// countRequiredTypes returns the cardinality of the intersection between the
// canonical required types and the distinct types of matching documents.
func countRequiredTypes(docs []Document, match func(Document) bool) int {
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if match(d) {
			seen[d.DocumentType] = true
		}
	}
	n := 0
	for _, t := range RequiredDocumentTypes {
		if seen[t] {
			n++
		}
	}
	return n
}

func (s *OnboardingSnapshot) completedPayments() []Payment {
	var out []Payment
	for _, p := range s.Payments {
		if p.Status == PaymentStatusCompleted {
			out = append(out, p)
		}
	}
	return out
}

// BuildChecklist evaluates every slot against the snapshot and computes the
// overall percentage over required slots only. Pure and deterministic: calling
// it twice on the same snapshot yields identical output, and it never fails.
func BuildChecklist(snap *OnboardingSnapshot) ChecklistResult {
	items := make([]ChecklistItemView, 0, len(checklistSlots))
	requiredTotal, requiredDone, completed := 0, 0, 0

	for _, slot := range checklistSlots {
		required := slot.required(snap)
		done := slot.done(snap)
		items = append(items, ChecklistItemView{
			ID:          slot.id,
			Title:       slot.title,
			Description: slot.describe(snap),
			Category:    slot.category,
			Order:       slot.order,
			IsCompleted: done,
			IsRequired:  required,
		})
		if done {
			completed++
		}
		if required {
			requiredTotal++
			if done {
				requiredDone++
			}
		}
	}

	percentage := 0
	if requiredTotal > 0 {
		percentage = int(math.Round(float64(requiredDone) / float64(requiredTotal) * 100))
	}

	return ChecklistResult{
		Items:      items,
		Percentage: percentage,
		Total:      len(items),
		Completed:  completed,
	}
}
