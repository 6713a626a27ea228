package services

import (
	"time"

	"backend/models"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Range modes for the aggregation queries.
const (
	RangeDaily   = "daily"
	RangeWeekly  = "weekly"
	RangeMonthly = "monthly"
)

type NutrientTotals struct {
	Calories     float64 `json:"calories"`
	Proteins     float64 `json:"proteins"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
	SaturatedFat float64 `json:"saturated_fat"`
	Sugars       float64 `json:"sugars"`
}

func (t *NutrientTotals) add(log models.FoodLog) {
	t.Calories += log.Calories
	t.Proteins += log.Proteins
	t.Carbs += log.Carbs
	t.Fats += log.Fats
	t.SaturatedFat += log.SaturatedFat
	t.Sugars += log.Sugars
}

// DailyTotals is one day of a weekly breakdown.
type DailyTotals struct {
	Date   string         `json:"date"`
	Totals NutrientTotals `json:"totals"`
}

// ResolveDate parses a YYYY-MM-DD query value. An empty or unparseable value
// falls back to the current UTC day; clients relying on the fallback for bad
// input is long-standing behavior, so it stays.
func ResolveDate(raw string) time.Time {
	if raw != "" {
		if d, err := time.Parse(dateLayout, raw); err == nil {
			return d
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// RangeWindow computes the inclusive [start, end] calendar-day window for a
// reference date. Weekly is a trailing 7-day window ending on the reference
// date, not an ISO calendar week. Unknown modes mean daily.
func RangeWindow(ref time.Time, mode string) (start, end time.Time) {
	switch mode {
	case RangeWeekly:
		return ref.AddDate(0, 0, -6), ref
	case RangeMonthly:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
		return start, end
	default:
		return ref, ref
	}
}

// SumTotals folds every entry into a single totals object. Zero entries give
// all-zero totals.
func SumTotals(logs []models.FoodLog) NutrientTotals {
	var totals NutrientTotals
	for _, log := range logs {
		totals.add(log)
	}
	return totals
}

// weeklyBreakdown buckets entries into one DailyTotals per calendar day of
// [start, end], ascending, zero-filled for days without entries.
func weeklyBreakdown(start, end time.Time, logs []models.FoodLog) []DailyTotals {
	byDate := map[string]int{}
	days := []DailyTotals{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		byDate[key] = len(days)
		days = append(days, DailyTotals{Date: key})
	}

	for _, log := range logs {
		if i, ok := byDate[log.Date]; ok {
			days[i].Totals.add(log)
		}
	}
	return days
}

// WeeklyBreakdown returns the per-day breakdown for the trailing 7-day window
// ending on ref. Always exactly 7 elements, date ascending.
func WeeklyBreakdown(userID string, ref time.Time) ([]DailyTotals, error) {
	start, end := RangeWindow(ref, RangeWeekly)
	startStr, endStr := start.Format(dateLayout), end.Format(dateLayout)

	logrus.Debugf("Querying weekly logs for user: %s, date range: %s to %s", userID, startStr, endStr)

	logs, err := LogsByDateRange(userID, startStr, endStr)
	if err != nil {
		return nil, err
	}

	return weeklyBreakdown(start, end, logs), nil
}

// RangeTotals returns the single summed totals object for the daily or
// monthly window around ref.
func RangeTotals(userID string, ref time.Time, mode string) (NutrientTotals, error) {
	start, end := RangeWindow(ref, mode)
	startStr, endStr := start.Format(dateLayout), end.Format(dateLayout)

	logrus.Debugf("Querying aggregate logs for user: %s, range: %s, date: %s to %s", userID, mode, startStr, endStr)

	logs, err := LogsByDateRange(userID, startStr, endStr)
	if err != nil {
		return NutrientTotals{}, err
	}

	return SumTotals(logs), nil
}
