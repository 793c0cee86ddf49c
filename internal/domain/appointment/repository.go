package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CatalogReader resolve entradas do catálogo por ID.
// Retorna (nil, nil) quando o ID não existe — ausência não é erro.
type CatalogReader interface {
	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	GetComboByID(
		ctx context.Context,
		id uint,
	) (*models.Combo, error)
}

type Repository interface {
	// -------- Stylist directory --------
	GetStylistByID(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	ListStylists(
		ctx context.Context,
	) ([]models.Stylist, error)

	// -------- Weekly schedules --------
	ListSchedulesByStylist(
		ctx context.Context,
		stylistID uint,
	) ([]models.WeeklySchedule, error)

	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointmentsByAccount(
		ctx context.Context,
		accountID uint,
	) ([]models.Appointment, error)

	// Agendamentos do stylist naquele timestamp exato (política de
	// conflito por instante, não por intervalo)
	ListAppointmentsAt(
		ctx context.Context,
		stylistID uint,
		instant time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------

	// ReserveAppointment cria o agendamento com checagem de conflito e
	// insert na mesma transação; corrida perdida vira erro de negócio
	// slot_taken, nunca linha duplicada.
	ReserveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment details --------
	ListDetailsByAppointment(
		ctx context.Context,
		appointmentID uint,
	) ([]models.AppointmentDetail, error)

	DeleteDetailsByAppointment(
		ctx context.Context,
		appointmentID uint,
	) error

	CreateDetail(
		ctx context.Context,
		detail *models.AppointmentDetail,
	) error

	// -------- Catalog --------
	CatalogReader
}
