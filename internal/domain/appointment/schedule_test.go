package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// 2026-01-05 é uma segunda-feira
func monday(hour, min int) time.Time {
	return time.Date(2026, 1, 5, hour, min, 0, 0, time.UTC)
}

func window(day, start, end string) models.WeeklySchedule {
	return models.WeeklySchedule{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
}

func TestIsOnDuty(t *testing.T) {
	schedules := []models.WeeklySchedule{
		window("MONDAY", "09:00", "17:00"),
	}

	t.Run("dentro da janela", func(t *testing.T) {
		assert.True(t, IsOnDuty(schedules, monday(10, 0)))
	})

	t.Run("antes da janela", func(t *testing.T) {
		assert.False(t, IsOnDuty(schedules, monday(8, 0)))
	})

	t.Run("depois da janela", func(t *testing.T) {
		assert.False(t, IsOnDuty(schedules, monday(17, 30)))
	})

	t.Run("bordas inclusivas", func(t *testing.T) {
		assert.True(t, IsOnDuty(schedules, monday(9, 0)))
		assert.True(t, IsOnDuty(schedules, monday(17, 0)))
	})

	t.Run("segundos depois do fim ficam fora", func(t *testing.T) {
		after := monday(17, 0).Add(30 * time.Second)
		assert.False(t, IsOnDuty(schedules, after))
	})

	t.Run("dia errado", func(t *testing.T) {
		tuesday := monday(10, 0).AddDate(0, 0, 1)
		assert.False(t, IsOnDuty(schedules, tuesday))
	})

	t.Run("nome do dia é case-insensitive", func(t *testing.T) {
		mixed := []models.WeeklySchedule{window("monday", "09:00", "17:00")}
		assert.True(t, IsOnDuty(mixed, monday(10, 0)))
	})

	t.Run("sem janelas", func(t *testing.T) {
		assert.False(t, IsOnDuty(nil, monday(10, 0)))
	})

	t.Run("várias janelas no mesmo dia", func(t *testing.T) {
		split := []models.WeeklySchedule{
			window("MONDAY", "09:00", "12:00"),
			window("MONDAY", "14:00", "18:00"),
		}
		assert.True(t, IsOnDuty(split, monday(10, 0)))
		assert.False(t, IsOnDuty(split, monday(13, 0)))
		assert.True(t, IsOnDuty(split, monday(15, 0)))
	})

	t.Run("janela com hora inválida é ignorada", func(t *testing.T) {
		broken := []models.WeeklySchedule{window("MONDAY", "9am", "17:00")}
		assert.False(t, IsOnDuty(broken, monday(10, 0)))
	})
}

func TestValidWindow(t *testing.T) {
	assert.True(t, ValidWindow("09:00", "17:00"))
	assert.True(t, ValidWindow("09:00", "09:00")) // start == end é válido
	assert.False(t, ValidWindow("17:00", "09:00"))
	assert.False(t, ValidWindow("9h", "17:00"))
	assert.False(t, ValidWindow("09:00", ""))
}
