package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	AccountID uint   `json:"account_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// --------- Handlers ---------

func (h *ReviewHandler) Create(c *gin.Context) {
	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, appointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	review := models.Review{
		AppointmentID: ap.ID,
		AccountID:     req.AccountID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		ReviewDate:    timezone.Now(),
	}

	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "review_create_failed", "Erro ao criar avaliação.")
		return
	}

	httpresp.Created(c, review)
}

func (h *ReviewHandler) ListByAppointment(c *gin.Context) {
	appointmentID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("appointment_id = ?", appointmentID).
		Order("id ASC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "review_list_failed", "Erro ao listar avaliações.")
		return
	}

	httpresp.List(c, reviews)
}
