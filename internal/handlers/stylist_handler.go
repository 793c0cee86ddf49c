package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type StylistHandler struct {
	db *gorm.DB
}

func NewStylistHandler(db *gorm.DB) *StylistHandler {
	return &StylistHandler{db: db}
}

// --------- Requests ---------

type CreateStylistRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	var stylists []models.Stylist
	if err := h.db.
		Order("id ASC").
		Find(&stylists).Error; err != nil {
		httperr.Internal(c, "stylist_list_failed", "Erro ao listar stylists.")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var stylist models.Stylist
	if err := h.db.
		Preload("Schedules").
		First(&stylist, id).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist não encontrado.")
		return
	}

	httpresp.OK(c, stylist)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	stylist := models.Stylist{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := h.db.Create(&stylist).Error; err != nil {
		httperr.Internal(c, "stylist_create_failed", "Erro ao criar stylist.")
		return
	}

	httpresp.Created(c, stylist)
}
