package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// IsOnDuty decide se o instante cai em alguma janela semanal do stylist:
// mesmo dia da semana (nome, case-insensitive) e hora do dia dentro de
// [start, end], inclusivo nas duas pontas. Sem janelas → false, sem erro.
func IsOnDuty(schedules []models.WeeklySchedule, instant time.Time) bool {
	day := instant.Weekday().String()
	secs := instant.Hour()*3600 + instant.Minute()*60 + instant.Second()

	for _, s := range schedules {
		if !strings.EqualFold(s.DayOfWeek, day) {
			continue
		}

		start, okStart := parseHM(s.StartTime)
		end, okEnd := parseHM(s.EndTime)
		if !okStart || !okEnd {
			continue
		}

		if secs >= start && secs <= end {
			return true
		}
	}

	return false
}

// ValidWindow garante o invariante start <= end de uma janela semanal.
func ValidWindow(startHM, endHM string) bool {
	start, okStart := parseHM(startHM)
	end, okEnd := parseHM(endHM)
	return okStart && okEnd && start <= end
}

func parseHM(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*3600 + t.Minute()*60, true
}
