package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// ======================================================
// PRICING
// ======================================================

type Pricing struct {
	repo    domain.Repository
	catalog domain.CatalogReader
}

func NewPricing(repo domain.Repository, catalog domain.CatalogReader) *Pricing {
	return &Pricing{
		repo:    repo,
		catalog: catalog,
	}
}

// ComputeTotal soma o preço de catálogo de cada linha do agendamento:
// preço do serviço, senão preço do combo, senão zero. Aritmética decimal
// exata, sem float. Recomputação é pull-based: o chamador invoca depois
// de toda mutação de linhas e persiste o resultado no Appointment.
func (uc *Pricing) ComputeTotal(
	ctx context.Context,
	appointmentID uint,
) (decimal.Decimal, error) {

	details, err := uc.repo.ListDetailsByAppointment(ctx, appointmentID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero

	for _, d := range details {
		item := domain.ResolveLineItem(d.ServiceID, d.ComboID)

		switch item.Kind {
		case domain.LineService:
			service, err := uc.catalog.GetServiceByID(ctx, item.ID)
			if err != nil {
				return decimal.Zero, err
			}
			if service != nil {
				total = total.Add(service.Price)
			}

		case domain.LineCombo:
			combo, err := uc.catalog.GetComboByID(ctx, item.ID)
			if err != nil {
				return decimal.Zero, err
			}
			if combo != nil {
				total = total.Add(combo.Price)
			}
		}
		// LineNone contribui zero
	}

	return total, nil
}
