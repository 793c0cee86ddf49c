package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucAppointment.CreateAppointment
	updateUC  *ucAppointment.UpdateAppointment
	cancelUC  *ucAppointment.CancelAppointment
	confirmUC *ucAppointment.ConfirmAppointment
	getUC     *ucAppointment.GetAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	confirmUC *ucAppointment.ConfirmAppointment,
	getUC *ucAppointment.GetAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		cancelUC:  cancelUC,
		confirmUC: confirmUC,
		getUC:     getUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentDetailRequest struct {
	ServiceID *uint `json:"service_id"`
	ComboID   *uint `json:"combo_id"`
}

type AppointmentRequest struct {
	Date      string `json:"date" binding:"required"` // 2006-01-02
	Time      string `json:"time" binding:"required"` // 15:04
	AccountID uint   `json:"account_id" binding:"required"`

	StylistID *uint `json:"stylist_id"`
	VoucherID *uint `json:"voucher_id"`

	Details []AppointmentDetailRequest `json:"details"`
}

func (req *AppointmentRequest) toInput() (ucAppointment.CreateAppointmentInput, error) {
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		req.Date+" "+req.Time,
		timezone.Location(""),
	)
	if err != nil {
		return ucAppointment.CreateAppointmentInput{}, err
	}

	details := make([]ucAppointment.LineItemInput, 0, len(req.Details))
	for _, d := range req.Details {
		details = append(details, ucAppointment.LineItemInput{
			ServiceID: d.ServiceID,
			ComboID:   d.ComboID,
		})
	}

	return ucAppointment.CreateAppointmentInput{
		Date:      start,
		AccountID: req.AccountID,
		StylistID: req.StylistID,
		VoucherID: req.VoucherID,
		Details:   details,
	}, nil
}

// ======================================================
// ERROR BOUNDARY
// ======================================================

// respondError é a fronteira única taxonomia → código HTTP.
// Erros de negócio viram 404/409; qualquer falha inesperada vira 500
// com a mensagem preservada para diagnóstico.
func respondError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "stylist_not_found":
			httperr.NotFound(c, be.Code, "Stylist não encontrado.")
		case "appointment_not_found":
			httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
		case "stylist_unavailable":
			httperr.Conflict(c, be.Code, "Stylist não está livre no horário escolhido.")
		case "no_stylist_available":
			httperr.Conflict(c, be.Code, "Nenhum stylist livre no horário escolhido.")
		case "slot_taken":
			httperr.Conflict(c, be.Code, "O horário acabou de ser ocupado.")
		case "invalid_transition":
			httperr.Conflict(c, be.Code, "Transição de status inválida.")
		default:
			httperr.BadRequest(c, be.Code, "Requisição inválida.")
		}
		return
	}

	httperr.Internal(c, "internal_error", err.Error())
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// WRITES
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := req.toInput()
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	if _, err := h.createUC.Execute(c.Request.Context(), in); err != nil {
		respondError(c, err)
		return
	}

	httpresp.Message(c, "Agendamento criado com sucesso.")
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in, err := req.toInput()
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentResponse(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.cancelUC.Execute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	httpresp.Message(c, "Agendamento cancelado.")
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if _, err := h.confirmUC.Execute(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	httpresp.Message(c, "Agendamento confirmado.")
}

// ======================================================
// READS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.getUC.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	resp, err := h.getUC.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, resp)
}

func (h *AppointmentHandler) ListByAccount(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	out, err := h.getUC.ListByAccount(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}
