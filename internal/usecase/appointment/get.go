package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// Projeções de leitura puras: nenhuma regra de negócio além de montar a
// resposta.
type GetAppointments struct {
	repo domain.Repository
}

func NewGetAppointments(repo domain.Repository) *GetAppointments {
	return &GetAppointments{repo: repo}
}

func (uc *GetAppointments) List(
	ctx context.Context,
) ([]dto.AppointmentResponse, error) {

	apps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewAppointmentResponse(&apps[i]))
	}
	return out, nil
}

func (uc *GetAppointments) GetByID(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentResponse, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	resp := dto.NewAppointmentResponse(ap)
	return &resp, nil
}

func (uc *GetAppointments) ListByAccount(
	ctx context.Context,
	accountID uint,
) ([]dto.AppointmentResponse, error) {

	apps, err := uc.repo.ListAppointmentsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentResponse, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewAppointmentResponse(&apps[i]))
	}
	return out, nil
}
