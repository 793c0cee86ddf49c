package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateAppointment struct {
	repo         domain.Repository
	availability *Availability
	pricing      *Pricing
	audit        Auditor
}

func NewUpdateAppointment(
	repo domain.Repository,
	availability *Availability,
	pricing *Pricing,
	audit Auditor,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:         repo,
		availability: availability,
		pricing:      pricing,
		audit:        audit,
	}
}

// Execute reaplica as regras do create sobre um agendamento existente:
// stylist re-resolvido, status forçado de volta para CONFIRMED (update
// sempre reconfirma), linhas trocadas por completo, preço recomputado.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}
	if err != nil {
		return nil, err
	}

	stylistID, err := resolveStylist(
		ctx,
		uc.repo,
		uc.availability,
		in.StylistID,
		in.Date,
	)
	if err != nil {
		return nil, err
	}

	// De CANCELLED não se sai: reconfirmar é transição ilegal
	if err := domain.Reconfirm(ap); err != nil {
		return nil, err
	}

	ap.AppointmentDate = in.Date
	ap.AccountID = in.AccountID
	ap.StylistID = &stylistID
	ap.VoucherID = in.VoucherID

	// Troca completa das linhas: apagar as antigas é pré-condição
	if err := uc.repo.DeleteDetailsByAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	for _, line := range in.Details {
		item, err := resolveLine(ctx, uc.repo, line)
		if err != nil {
			return nil, err
		}

		detail := item.Detail(ap.ID)
		if err := uc.repo.CreateDetail(ctx, &detail); err != nil {
			return nil, err
		}
	}

	total, err := uc.pricing.ComputeTotal(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	ap.Price = total
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		AccountID: &ap.AccountID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	// Recarrega com associações para a projeção completa da resposta
	return uc.repo.GetAppointmentByID(ctx, ap.ID)
}
