package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentDetailResponse struct {
	ID           uint             `json:"id"`
	ServiceID    *uint            `json:"service_id,omitempty"`
	ComboID      *uint            `json:"combo_id,omitempty"`
	ServiceName  *string          `json:"service_name,omitempty"`
	ComboName    *string          `json:"combo_name,omitempty"`
	ServicePrice *decimal.Decimal `json:"service_price,omitempty"`
	ComboPrice   *decimal.Decimal `json:"combo_price,omitempty"`
}

type ReviewResponse struct {
	ID            uint      `json:"id"`
	Comment       string    `json:"comment"`
	Rating        int       `json:"rating"`
	AccountID     uint      `json:"account_id"`
	AppointmentID uint      `json:"appointment_id"`
	ReviewDate    time.Time `json:"review_date"`
}

type AppointmentResponse struct {
	ID              uint            `json:"id"`
	AppointmentDate time.Time       `json:"appointment_date"`
	Status          string          `json:"status"`
	AccountID       uint            `json:"account_id"`
	StylistID       *uint           `json:"stylist_id"`
	VoucherID       *uint           `json:"voucher_id"`
	Price           decimal.Decimal `json:"price"`

	Details []AppointmentDetailResponse `json:"details"`
	Reviews []ReviewResponse            `json:"reviews"`
}

// NewAppointmentResponse monta a projeção completa; espera Details
// (com Service/Combo) e Reviews pré-carregados, na ordem do repositório.
func NewAppointmentResponse(ap *models.Appointment) AppointmentResponse {
	details := make([]AppointmentDetailResponse, 0, len(ap.Details))
	for _, d := range ap.Details {
		resp := AppointmentDetailResponse{
			ID:        d.ID,
			ServiceID: d.ServiceID,
			ComboID:   d.ComboID,
		}

		if d.Service != nil {
			name := d.Service.Name
			price := d.Service.Price
			resp.ServiceName = &name
			resp.ServicePrice = &price
		}

		if d.Combo != nil {
			name := d.Combo.Name
			price := d.Combo.Price
			resp.ComboName = &name
			resp.ComboPrice = &price
		}

		details = append(details, resp)
	}

	reviews := make([]ReviewResponse, 0, len(ap.Reviews))
	for _, rv := range ap.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:            rv.ID,
			Comment:       rv.Comment,
			Rating:        rv.Rating,
			AccountID:     rv.AccountID,
			AppointmentID: rv.AppointmentID,
			ReviewDate:    rv.ReviewDate,
		})
	}

	return AppointmentResponse{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate,
		Status:          ap.Status,
		AccountID:       ap.AccountID,
		StylistID:       ap.StylistID,
		VoucherID:       ap.VoucherID,
		Price:           ap.Price,
		Details:         details,
		Reviews:         reviews,
	}
}
