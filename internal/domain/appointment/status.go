package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
)

// Status inicial de todo agendamento criado
func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Transições
// ===============================

// CanTransition valida a legalidade da transição de status.
// CANCELLED é re-entrante (cancelar duas vezes é idempotente),
// mas nenhum outro status pode ser alcançado a partir dele.
func CanTransition(from, to Status) error {
	if from == StatusCancelled && to != StatusCancelled {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

// CanConfirm: "confirmar" marca o agendamento como SCHEDULED
// (mapeamento herdado do fluxo original — não inverter)
func CanConfirm(current Status) error {
	return CanTransition(current, StatusScheduled)
}

// CanReconfirm: toda atualização força o status de volta para CONFIRMED
func CanReconfirm(current Status) error {
	return CanTransition(current, StatusConfirmed)
}
