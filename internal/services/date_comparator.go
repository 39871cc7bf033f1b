package services

import (
	"time"
	"vcheck/internal/models"
)

// FreshnessThresholdDays is the largest gap still considered in sync.
const FreshnessThresholdDays = 90

const (
	isoDate       = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// CompareDates classifies dateB - dateA in whole days. The difference is
// zero unless both dates are present and well formed.
func CompareDates(dateA, dateB string) (int, models.Status) {
	if dateA == "" || dateB == "" {
		return 0, models.StatusUncomparable
	}

	a, err := time.Parse(isoDate, dateA)
	if err != nil {
		return 0, models.StatusFormatError
	}
	b, err := time.Parse(isoDate, dateB)
	if err != nil {
		return 0, models.StatusFormatError
	}

	// both dates are UTC midnight; Sub would saturate past ~292 years
	diff := int((b.Unix() - a.Unix()) / secondsPerDay)
	switch {
	case diff > FreshnessThresholdDays:
		return diff, models.StatusStaleA
	case diff < -FreshnessThresholdDays:
		return diff, models.StatusAheadA
	default:
		return diff, models.StatusInSync
	}
}
