package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ComboHandler struct {
	db *gorm.DB
}

func NewComboHandler(db *gorm.DB) *ComboHandler {
	return &ComboHandler{db: db}
}

func (h *ComboHandler) List(c *gin.Context) {
	var combos []models.Combo
	if err := h.db.
		Preload("Details.Service").
		Order("id ASC").
		Find(&combos).Error; err != nil {
		httperr.Internal(c, "combo_list_failed", "Erro ao listar combos.")
		return
	}

	out := make([]dto.ComboResponse, 0, len(combos))
	for i := range combos {
		out = append(out, dto.NewComboResponse(&combos[i]))
	}

	httpresp.List(c, out)
}

func (h *ComboHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var combo models.Combo
	if err := h.db.
		Preload("Details.Service").
		First(&combo, id).Error; err != nil {
		httperr.NotFound(c, "combo_not_found", "Combo não encontrado.")
		return
	}

	httpresp.OK(c, dto.NewComboResponse(&combo))
}
