package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Stylist{},
		&models.WeeklySchedule{},
		&models.Service{},
		&models.Combo{},
		&models.ComboDetail{},
		&models.Appointment{},
		&models.AppointmentDetail{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// Sem o índice a corrida de dupla reserva fica aberta: o lock de
	// linha da reserva não cobre um slot ainda vazio.
	if err := ensureReservationIndex(db); err != nil {
		log.Fatal("failed to create reservation index", zap.Error(err))
	}

	return db
}

// Reserva atômica: no máximo um agendamento não cancelado por
// (stylist, instante).
const reservationIndexSQL = `
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_stylist_instant_active
        ON appointments (stylist_id, appointment_date)
        WHERE status <> 'CANCELLED' AND stylist_id IS NOT NULL
    `

func ensureReservationIndex(db *gorm.DB) error {
	return db.Exec(reservationIndexSQL).Error
}
