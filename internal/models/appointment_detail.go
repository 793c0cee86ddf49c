package models

import "time"

// Linha do agendamento: referencia um serviço OU um combo (nunca os dois).
// A escolha é resolvida no domínio (appointment.LineItem); aqui ficam só as FKs.
type AppointmentDetail struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	ComboID *uint  `json:"combo_id"`
	Combo   *Combo `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"combo,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
