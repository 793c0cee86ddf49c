package appointment

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// STUB REPOSITORY (em memória)
// ======================================================

type stubRepo struct {
	stylists     []models.Stylist
	schedules    map[uint][]models.WeeklySchedule
	appointments map[uint]models.Appointment
	details      map[uint][]models.AppointmentDetail
	services     map[uint]models.Service
	combos       map[uint]models.Combo

	nextAppointmentID uint
	nextDetailID      uint

	// IDs de agendamento cujas linhas foram apagadas, na ordem
	detailWipes []uint
}

var _ domain.Repository = (*stubRepo)(nil)

func newStubRepo() *stubRepo {
	return &stubRepo{
		schedules:    map[uint][]models.WeeklySchedule{},
		appointments: map[uint]models.Appointment{},
		details:      map[uint][]models.AppointmentDetail{},
		services:     map[uint]models.Service{},
		combos:       map[uint]models.Combo{},
	}
}

// -------- fixtures --------

func (r *stubRepo) addStylist(id uint, name string, schedules ...models.WeeklySchedule) {
	r.stylists = append(r.stylists, models.Stylist{ID: id, Name: name})
	r.schedules[id] = schedules
}

func (r *stubRepo) addService(id uint, name, price string) {
	r.services[id] = models.Service{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func (r *stubRepo) addCombo(id uint, name, price string) {
	r.combos[id] = models.Combo{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

// seedAppointment insere direto, sem passar pela reserva.
func (r *stubRepo) seedAppointment(stylistID uint, instant time.Time, status string) uint {
	r.nextAppointmentID++
	id := r.nextAppointmentID
	r.appointments[id] = models.Appointment{
		ID:              id,
		AppointmentDate: instant,
		AccountID:       1,
		StylistID:       &stylistID,
		Status:          status,
	}
	return id
}

// -------- stylists e janelas --------

func (r *stubRepo) GetStylistByID(ctx context.Context, id uint) (*models.Stylist, error) {
	for i := range r.stylists {
		if r.stylists[i].ID == id {
			s := r.stylists[i]
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRepo) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	return append([]models.Stylist(nil), r.stylists...), nil
}

func (r *stubRepo) ListSchedulesByStylist(ctx context.Context, stylistID uint) ([]models.WeeklySchedule, error) {
	return r.schedules[stylistID], nil
}

// -------- appointments --------

func (r *stubRepo) loadAppointment(id uint) models.Appointment {
	ap := r.appointments[id]
	ap.Details = append([]models.AppointmentDetail(nil), r.details[id]...)
	return ap
}

func (r *stubRepo) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for id := range r.appointments {
		out = append(out, r.loadAppointment(id))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubRepo) GetAppointmentByID(ctx context.Context, id uint) (*models.Appointment, error) {
	if _, ok := r.appointments[id]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	ap := r.loadAppointment(id)
	return &ap, nil
}

func (r *stubRepo) ListAppointmentsByAccount(ctx context.Context, accountID uint) ([]models.Appointment, error) {
	all, _ := r.ListAppointments(ctx)
	var out []models.Appointment
	for _, ap := range all {
		if ap.AccountID == accountID {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *stubRepo) ListAppointmentsAt(ctx context.Context, stylistID uint, instant time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for id, ap := range r.appointments {
		if ap.StylistID != nil && *ap.StylistID == stylistID && ap.AppointmentDate.Equal(instant) {
			out = append(out, r.loadAppointment(id))
		}
	}
	return out, nil
}

func (r *stubRepo) ReserveAppointment(ctx context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.StylistID == nil || ap.StylistID == nil {
			continue
		}
		if *existing.StylistID == *ap.StylistID &&
			existing.AppointmentDate.Equal(ap.AppointmentDate) &&
			existing.Status != string(domain.StatusCancelled) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextAppointmentID++
	ap.ID = r.nextAppointmentID

	cp := *ap
	cp.Details = nil
	r.appointments[ap.ID] = cp
	return nil
}

func (r *stubRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *ap
	cp.Details = nil
	r.appointments[ap.ID] = cp
	return nil
}

// -------- details --------

func (r *stubRepo) ListDetailsByAppointment(ctx context.Context, appointmentID uint) ([]models.AppointmentDetail, error) {
	return append([]models.AppointmentDetail(nil), r.details[appointmentID]...), nil
}

func (r *stubRepo) DeleteDetailsByAppointment(ctx context.Context, appointmentID uint) error {
	r.detailWipes = append(r.detailWipes, appointmentID)
	delete(r.details, appointmentID)
	return nil
}

func (r *stubRepo) CreateDetail(ctx context.Context, detail *models.AppointmentDetail) error {
	r.nextDetailID++
	detail.ID = r.nextDetailID
	r.details[detail.AppointmentID] = append(r.details[detail.AppointmentID], *detail)
	return nil
}

// -------- catálogo --------

func (r *stubRepo) GetServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (r *stubRepo) GetComboByID(ctx context.Context, id uint) (*models.Combo, error) {
	if c, ok := r.combos[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// ======================================================
// STUB AUDITOR
// ======================================================

type stubAuditor struct {
	events []audit.Event
}

func (a *stubAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}

func (a *stubAuditor) actions() []string {
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

// ======================================================
// SUITE
// ======================================================

type suite struct {
	repo    *stubRepo
	auditor *stubAuditor

	create  *CreateAppointment
	update  *UpdateAppointment
	cancel  *CancelAppointment
	confirm *ConfirmAppointment
}

// newSuite monta o salão padrão dos testes:
// stylist 1 (Lan) segunda 09:00–17:00, stylist 2 (Mai) segunda 09:00–12:00,
// serviço 1 a 25.00, combo 1 a 75.50.
func newSuite() *suite {
	repo := newStubRepo()
	repo.addStylist(1, "Lan", models.WeeklySchedule{
		StylistID: 1, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "17:00",
	})
	repo.addStylist(2, "Mai", models.WeeklySchedule{
		StylistID: 2, DayOfWeek: "MONDAY", StartTime: "09:00", EndTime: "12:00",
	})
	repo.addService(1, "Corte feminino", "25.00")
	repo.addCombo(1, "Dia de noiva", "75.50")

	availability := NewAvailability(repo)
	pricing := NewPricing(repo, repo)
	auditor := &stubAuditor{}

	return &suite{
		repo:    repo,
		auditor: auditor,
		create:  NewCreateAppointment(repo, availability, pricing, auditor),
		update:  NewUpdateAppointment(repo, availability, pricing, auditor),
		cancel:  NewCancelAppointment(repo, auditor),
		confirm: NewConfirmAppointment(repo, auditor),
	}
}

// 2026-01-05 é uma segunda-feira
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func uid(v uint) *uint { return &v }
