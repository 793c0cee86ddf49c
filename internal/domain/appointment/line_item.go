package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

// ===============================
// Line Item (serviço OU combo)
// ===============================

type LineKind int

const (
	LineNone LineKind = iota
	LineService
	LineCombo
)

// LineItem é a escolha explícita de vínculo de uma linha do agendamento,
// resolvida uma única vez na criação. Uma linha sem vínculo é válida e
// contribui com preço zero.
type LineItem struct {
	Kind LineKind
	ID   uint
}

// ResolveLineItem resolve as duas FKs anuláveis do request em uma escolha.
// Serviço tem precedência quando os dois IDs vierem preenchidos.
func ResolveLineItem(serviceID, comboID *uint) LineItem {
	switch {
	case serviceID != nil:
		return LineItem{Kind: LineService, ID: *serviceID}
	case comboID != nil:
		return LineItem{Kind: LineCombo, ID: *comboID}
	default:
		return LineItem{Kind: LineNone}
	}
}

// Detail materializa a escolha nas colunas de persistência.
func (li LineItem) Detail(appointmentID uint) models.AppointmentDetail {
	d := models.AppointmentDetail{AppointmentID: appointmentID}

	switch li.Kind {
	case LineService:
		id := li.ID
		d.ServiceID = &id
	case LineCombo:
		id := li.ID
		d.ComboID = &id
	}

	return d
}
