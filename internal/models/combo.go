package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Combo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string          `gorm:"size:100;not null" json:"name"`
	Price decimal.Decimal `gorm:"type:numeric(12,2)" json:"price"`

	Details []ComboDetail `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"details,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Projeção somente leitura dos serviços que compõem o combo.
type ComboDetail struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	ComboID uint `gorm:"index" json:"combo_id"`

	ServiceID uint     `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
