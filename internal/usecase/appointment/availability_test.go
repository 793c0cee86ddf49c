package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

func TestAvailabilityIsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("livre e de plantão", func(t *testing.T) {
		s := newSuite()
		availability := NewAvailability(s.repo)

		ok, err := availability.IsAvailable(ctx, 1, mondayAt(10, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("fora do plantão", func(t *testing.T) {
		s := newSuite()
		availability := NewAvailability(s.repo)

		ok, err := availability.IsAvailable(ctx, 1, mondayAt(8, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("conflito no mesmo instante", func(t *testing.T) {
		s := newSuite()
		s.repo.seedAppointment(1, mondayAt(10, 0), string(domain.StatusConfirmed))
		availability := NewAvailability(s.repo)

		ok, err := availability.IsAvailable(ctx, 1, mondayAt(10, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("agendamento cancelado ainda ocupa o slot", func(t *testing.T) {
		s := newSuite()
		s.repo.seedAppointment(1, mondayAt(10, 0), string(domain.StatusCancelled))
		availability := NewAvailability(s.repo)

		ok, err := availability.IsAvailable(ctx, 1, mondayAt(10, 0))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("outro horário não conflita", func(t *testing.T) {
		s := newSuite()
		s.repo.seedAppointment(1, mondayAt(10, 0), string(domain.StatusConfirmed))
		availability := NewAvailability(s.repo)

		ok, err := availability.IsAvailable(ctx, 1, mondayAt(11, 0))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAvailabilityFindAnyAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("first-fit pega o primeiro do diretório", func(t *testing.T) {
		s := newSuite()
		availability := NewAvailability(s.repo)

		stylist, err := availability.FindAnyAvailable(ctx, mondayAt(10, 0))
		require.NoError(t, err)
		require.NotNil(t, stylist)
		assert.Equal(t, uint(1), stylist.ID)
	})

	t.Run("primeiro ocupado cai para o segundo", func(t *testing.T) {
		s := newSuite()
		s.repo.seedAppointment(1, mondayAt(10, 0), string(domain.StatusConfirmed))
		availability := NewAvailability(s.repo)

		stylist, err := availability.FindAnyAvailable(ctx, mondayAt(10, 0))
		require.NoError(t, err)
		require.NotNil(t, stylist)
		assert.Equal(t, uint(2), stylist.ID)
	})

	t.Run("ninguém de plantão", func(t *testing.T) {
		s := newSuite()
		availability := NewAvailability(s.repo)

		// 14:00 só a stylist 1 trabalha; ocupada, não há fallback
		s.repo.seedAppointment(1, mondayAt(14, 0), string(domain.StatusConfirmed))

		stylist, err := availability.FindAnyAvailable(ctx, mondayAt(14, 0))
		require.NoError(t, err)
		assert.Nil(t, stylist)
	})
}
