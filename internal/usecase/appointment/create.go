package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type LineItemInput struct {
	ServiceID *uint
	ComboID   *uint
}

type CreateAppointmentInput struct {
	Date      time.Time
	AccountID uint

	// Nulo = cliente não escolheu; resolvemos via first-fit
	StylistID *uint

	VoucherID *uint

	Details []LineItemInput
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo         domain.Repository
	availability *Availability
	pricing      *Pricing
	audit        Auditor
}

func NewCreateAppointment(
	repo domain.Repository,
	availability *Availability,
	pricing *Pricing,
	audit Auditor,
) *CreateAppointment {
	return &CreateAppointment{
		repo:         repo,
		availability: availability,
		pricing:      pricing,
		audit:        audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Stylist: escolha explícita ou first-fit
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 2️⃣ Reserva atômica do slot
	// --------------------------------------------------
	ap := &models.Appointment{
		AppointmentDate: in.Date,
		AccountID:       in.AccountID,
		StylistID:       &stylistID,
		Status:          string(domain.InitialStatus()),
		VoucherID:       in.VoucherID,
	}

	if err := uc.repo.ReserveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Linhas (vínculo resolvido uma única vez)
	// --------------------------------------------------
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

	// --------------------------------------------------
	// 4️⃣ Preço derivado das linhas, persistido de volta
	// --------------------------------------------------
	total, err := uc.pricing.ComputeTotal(ctx, ap.ID)
	if err != nil {
		return nil, err
	}

	ap.Price = total
	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		AccountID: &ap.AccountID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}

// ======================================================
// HELPERS (compartilhados com o update)
// ======================================================

// resolveStylist aplica as mesmas regras no create e no update:
// ID explícito → precisa existir (stylist_not_found) e estar livre
// (stylist_unavailable); sem ID → first-fit (no_stylist_available).
func resolveStylist(
	ctx context.Context,
	repo domain.Repository,
	availability *Availability,
	stylistID *uint,
	instant time.Time,
) (uint, error) {

	if stylistID != nil {
		stylist, err := repo.GetStylistByID(ctx, *stylistID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, httperr.ErrBusiness("stylist_not_found")
		}
		if err != nil {
			return 0, err
		}

		ok, err := availability.IsAvailable(ctx, stylist.ID, instant)
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, httperr.ErrBusiness("stylist_unavailable")
		}

		return stylist.ID, nil
	}

	stylist, err := availability.FindAnyAvailable(ctx, instant)
	if err != nil {
		return 0, err
	}
	if stylist == nil {
		return 0, httperr.ErrBusiness("no_stylist_available")
	}

	return stylist.ID, nil
}

// resolveLine valida o vínculo contra o catálogo. ID que não resolve não é
// erro: a linha fica sem vínculo e contribui zero no preço.
func resolveLine(
	ctx context.Context,
	repo domain.Repository,
	in LineItemInput,
) (domain.LineItem, error) {

	item := domain.ResolveLineItem(in.ServiceID, in.ComboID)

	switch item.Kind {
	case domain.LineService:
		service, err := repo.GetServiceByID(ctx, item.ID)
		if err != nil {
			return domain.LineItem{}, err
		}
		if service == nil {
			return domain.LineItem{Kind: domain.LineNone}, nil
		}

	case domain.LineCombo:
		combo, err := repo.GetComboByID(ctx, item.ID)
		if err != nil {
			return domain.LineItem{}, err
		}
		if combo == nil {
			return domain.LineItem{Kind: domain.LineNone}, nil
		}
	}

	return item, nil
}
