package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// AVAILABILITY
// ======================================================

type Availability struct {
	repo domain.Repository
}

func NewAvailability(repo domain.Repository) *Availability {
	return &Availability{repo: repo}
}

// HasConflict: qualquer linha existente naquele timestamp exato ocupa o
// slot, inclusive canceladas (política herdada, ver DESIGN.md). Não é
// overlap de intervalo.
func (uc *Availability) HasConflict(
	ctx context.Context,
	stylistID uint,
	instant time.Time,
) (bool, error) {

	existing, err := uc.repo.ListAppointmentsAt(ctx, stylistID, instant)
	if err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}

func (uc *Availability) IsOnDuty(
	ctx context.Context,
	stylistID uint,
	instant time.Time,
) (bool, error) {

	schedules, err := uc.repo.ListSchedulesByStylist(ctx, stylistID)
	if err != nil {
		return false, err
	}
	return domain.IsOnDuty(schedules, instant), nil
}

// IsAvailable = sem conflito E de plantão. O conflito vem primeiro:
// caminho falso mais barato.
func (uc *Availability) IsAvailable(
	ctx context.Context,
	stylistID uint,
	instant time.Time,
) (bool, error) {

	conflict, err := uc.HasConflict(ctx, stylistID, instant)
	if err != nil {
		return false, err
	}
	if conflict {
		return false, nil
	}

	return uc.IsOnDuty(ctx, stylistID, instant)
}

// FindAnyAvailable: first-fit na ordem do diretório de stylists.
// Determinístico para o mesmo instante e o mesmo roster; nil quando
// ninguém está livre.
func (uc *Availability) FindAnyAvailable(
	ctx context.Context,
	instant time.Time,
) (*models.Stylist, error) {

	stylists, err := uc.repo.ListStylists(ctx)
	if err != nil {
		return nil, err
	}

	for i := range stylists {
		ok, err := uc.IsAvailable(ctx, stylists[i].ID, instant)
		if err != nil {
			return nil, err
		}
		if ok {
			return &stylists[i], nil
		}
	}

	return nil, nil
}
