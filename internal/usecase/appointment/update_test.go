package appointment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestUpdateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("agendamento inexistente", func(t *testing.T) {
		s := newSuite()

		_, err := s.update.Execute(ctx, 42, CreateAppointmentInput{
			Date:      mondayAt(10, 0),
			AccountID: 7,
			StylistID: uid(1),
		})
		assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
		assert.Empty(t, s.repo.detailWipes, "não pode mexer nas linhas")
	})

	t.Run("troca completa das linhas e repreço", func(t *testing.T) {
		s := newSuite()

		ap, err := s.create.Execute(ctx, CreateAppointmentInput{
			Date:      mondayAt(10, 0),
			AccountID: 7,
			StylistID: uid(1),
			Details:   []LineItemInput{{ServiceID: uid(1)}},
		})
		require.NoError(t, err)

		updated, err := s.update.Execute(ctx, ap.ID, CreateAppointmentInput{
			Date:      mondayAt(11, 0),
			AccountID: 7,
			StylistID: uid(1),
			Details:   []LineItemInput{{ComboID: uid(1)}},
		})
		require.NoError(t, err)

		assert.Contains(t, s.repo.detailWipes, ap.ID)
		require.Len(t, updated.Details, 1)
		require.NotNil(t, updated.Details[0].ComboID)
		assert.Equal(t, uint(1), *updated.Details[0].ComboID)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("75.50")),
			"price = %s", updated.Price)
		assert.True(t, updated.AppointmentDate.Equal(mondayAt(11, 0)))

		assert.Equal(t,
			[]string{"appointment_created", "appointment_updated"},
			s.auditor.actions())
	})

	t.Run("update reconfirma agendamento marcado", func(t *testing.T) {
		s := newSuite()

		ap, err := s.create.Execute(ctx, CreateAppointmentInput{
			Date:      mondayAt(10, 0),
			AccountID: 7,
			StylistID: uid(1),
		})
		require.NoError(t, err)

		_, err = s.confirm.Execute(ctx, ap.ID)
		require.NoError(t, err)

		updated, err := s.update.Execute(ctx, ap.ID, CreateAppointmentInput{
			Date:      mondayAt(11, 0),
			AccountID: 7,
			StylistID: uid(1),
		})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), updated.Status)
	})

	t.Run("cancelado não aceita update", func(t *testing.T) {
		s := newSuite()

		ap, err := s.create.Execute(ctx, CreateAppointmentInput{
			Date:      mondayAt(10, 0),
			AccountID: 7,
			StylistID: uid(1),
		})
		require.NoError(t, err)

		_, err = s.cancel.Execute(ctx, ap.ID)
		require.NoError(t, err)

		_, err = s.update.Execute(ctx, ap.ID, CreateAppointmentInput{
			Date:      mondayAt(11, 0),
			AccountID: 7,
			StylistID: uid(1),
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	})
}
