package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	db *gorm.DB
}

func NewScheduleHandler(db *gorm.DB) *ScheduleHandler {
	return &ScheduleHandler{db: db}
}

// --------- Requests ---------

type ScheduleEntryRequest struct {
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"` // 15:04
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateSchedulesRequest struct {
	Schedules []ScheduleEntryRequest `json:"schedules" binding:"required"`
}

func validDayOfWeek(name string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(name, d.String()) {
			return true
		}
	}
	return false
}

// --------- Handlers ---------

func (h *ScheduleHandler) List(c *gin.Context) {
	stylistID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var schedules []models.WeeklySchedule
	if err := h.db.
		Where("stylist_id = ?", stylistID).
		Order("id ASC").
		Find(&schedules).Error; err != nil {
		httperr.Internal(c, "schedule_list_failed", "Erro ao listar horários.")
		return
	}

	httpresp.List(c, schedules)
}

// Update troca o conjunto completo de janelas do stylist.
// Várias janelas no mesmo dia são permitidas; start <= end é invariante.
func (h *ScheduleHandler) Update(c *gin.Context) {
	stylistID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist não encontrado.")
		return
	}

	var req UpdateSchedulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	for _, entry := range req.Schedules {
		if !validDayOfWeek(entry.DayOfWeek) {
			httperr.BadRequest(c, "invalid_schedule", "Dia da semana inválido.")
			return
		}
		if !domain.ValidWindow(entry.StartTime, entry.EndTime) {
			httperr.BadRequest(c, "invalid_schedule", "Janela de horário inválida.")
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("stylist_id = ?", stylistID).
			Delete(&models.WeeklySchedule{}).Error; err != nil {
			return err
		}

		for _, entry := range req.Schedules {
			schedule := models.WeeklySchedule{
				StylistID: stylistID,
				DayOfWeek: strings.ToUpper(entry.DayOfWeek),
				StartTime: entry.StartTime,
				EndTime:   entry.EndTime,
			}
			if err := tx.Create(&schedule).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		httperr.Internal(c, "schedule_update_failed", "Erro ao salvar horários.")
		return
	}

	httpresp.Message(c, "Horários atualizados.")
}
