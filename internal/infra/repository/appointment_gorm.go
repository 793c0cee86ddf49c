package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Stylist directory
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStylistByID(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

func (r *AppointmentGormRepository) ListStylists(
	ctx context.Context,
) ([]models.Stylist, error) {

	var stylists []models.Stylist
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		return nil, err
	}
	return stylists, nil
}

// --------------------------------------------------
// Weekly schedules
// --------------------------------------------------

func (r *AppointmentGormRepository) ListSchedulesByStylist(
	ctx context.Context,
	stylistID uint,
) ([]models.WeeklySchedule, error) {

	var schedules []models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.withAssociations(ctx).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.withAssociations(ctx).
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByAccount(
	ctx context.Context,
	accountID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.withAssociations(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Timestamp exato, qualquer status: linha cancelada ainda ocupa o slot
// (política herdada, ver DESIGN.md)
func (r *AppointmentGormRepository) ListAppointmentsAt(
	ctx context.Context,
	stylistID uint,
	instant time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND appointment_date = ?", stylistID, instant).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("appointment_details.id ASC")
		}).
		Preload("Details.Service").
		Preload("Details.Combo").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("reviews.id ASC")
		})
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// conflictScope seleciona as reservas ativas do slot exato com lock de
// linha. Postgres não aceita FOR UPDATE com agregação, então a checagem
// trava as linhas em si e conta no cliente.
func conflictScope(tx *gorm.DB, stylistID *uint, instant time.Time) *gorm.DB {
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"stylist_id = ? AND appointment_date = ? AND status <> ?",
			stylistID,
			instant,
			string(domain.StatusCancelled),
		)
}

// ReserveAppointment fecha a corrida check-then-act: lock de linha e
// insert na mesma transação. Slot ainda vazio não tem linha para travar;
// essa janela é do índice único parcial, cuja violação também vira
// slot_taken.
func (r *AppointmentGormRepository) ReserveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var taken []models.Appointment
		if err := conflictScope(tx, ap.StylistID, ap.AppointmentDate).
			Find(&taken).Error; err != nil {
			return err
		}

		if len(taken) > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

// --------------------------------------------------
// Appointment details
// --------------------------------------------------

func (r *AppointmentGormRepository) ListDetailsByAppointment(
	ctx context.Context,
	appointmentID uint,
) ([]models.AppointmentDetail, error) {

	var details []models.AppointmentDetail
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *AppointmentGormRepository) DeleteDetailsByAppointment(
	ctx context.Context,
	appointmentID uint,
) error {
	return r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.AppointmentDetail{}).Error
}

func (r *AppointmentGormRepository) CreateDetail(
	ctx context.Context,
	detail *models.AppointmentDetail,
) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

// --------------------------------------------------
// Catalog (ausência não é erro)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	err := r.db.WithContext(ctx).First(&service, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetComboByID(
	ctx context.Context,
	id uint,
) (*models.Combo, error) {

	var combo models.Combo
	err := r.db.WithContext(ctx).First(&combo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &combo, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
