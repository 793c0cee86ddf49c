package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentDate time.Time `gorm:"index" json:"appointment_date"`

	AccountID uint `json:"account_id"`

	// Nulo até o stylist ser resolvido (escolha explícita ou first-fit)
	StylistID *uint    `gorm:"index" json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	Status string `gorm:"size:20;default:'CONFIRMED'" json:"status"`

	VoucherID *uint `json:"voucher_id"`

	Price decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`

	Details []AppointmentDetail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details,omitempty"`
	Reviews []Review            `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reviews,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
