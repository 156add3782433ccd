package scenes

import (
	"github.com/rgehrsitz/fitsizer/internal/config"
	"github.com/rgehrsitz/fitsizer/internal/domain"
)

func capacityFacts(s *config.Settings) domain.CapacityFacts {
	return domain.CapacityFacts{
		CapacityPerHour: s.Capacity.CapacityPerHour,
		HoursPerDay:     s.Capacity.HoursPerDay,
		DaysPerWeek:     s.Capacity.DaysPerWeek,
		WeeksPerMonth:   s.Capacity.WeeksPerMonth,
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
