package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ComboDetailResponse struct {
	ID           uint             `json:"id"`
	ServiceID    uint             `json:"service_id"`
	ServiceName  string           `json:"service_name"`
	ServicePrice *decimal.Decimal `json:"service_price,omitempty"`
	ServiceImage string           `json:"service_image,omitempty"`
}

type ComboResponse struct {
	ID      uint                  `json:"id"`
	Name    string                `json:"name"`
	Price   decimal.Decimal       `json:"price"`
	Details []ComboDetailResponse `json:"details"`
}

// Projeção somente leitura do combo com os serviços que o compõem.
func NewComboResponse(combo *models.Combo) ComboResponse {
	details := make([]ComboDetailResponse, 0, len(combo.Details))
	for _, d := range combo.Details {
		resp := ComboDetailResponse{
			ID:        d.ID,
			ServiceID: d.ServiceID,
		}

		if d.Service != nil {
			price := d.Service.Price
			resp.ServiceName = d.Service.Name
			resp.ServicePrice = &price
			resp.ServiceImage = d.Service.ImageURL
		}

		details = append(details, resp)
	}

	return ComboResponse{
		ID:      combo.ID,
		Name:    combo.Name,
		Price:   combo.Price,
		Details: details,
	}
}
