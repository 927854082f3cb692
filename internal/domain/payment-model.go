package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

var PaymentTypes = []string{
	"tuition",
	"hostel",
	"library",
	"laboratory",
	"examination",
	"sports",
	"other",
}

func KnownPaymentType(t string) bool {
	for _, pt := range PaymentTypes {
		if pt == t {
			return true
		}
	}
	return false
}

type Payment struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	UniversityID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"university_id"`
	PaymentType   string        `gorm:"type:varchar(100);not null" json:"payment_type"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Currency      string        `gorm:"type:varchar(3);default:'INR'" json:"currency"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionID *string       `gorm:"type:varchar(255);uniqueIndex" json:"transaction_id,omitempty"`
	PaymentMethod *string       `gorm:"type:varchar(50)" json:"payment_method,omitempty"`
	Notes         *string       `gorm:"type:text" json:"notes,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
