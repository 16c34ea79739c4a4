package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/platescan/backend/internal/types"
)

// AnalyticsService computes the trailing daily intake aggregate. The
// aggregate is advisory: it is recomputed on every request, never stored,
// and is not transactionally consistent with concurrent inserts.
type AnalyticsService struct {
	store RecordStore
}

// NewAnalyticsService creates an AnalyticsService over the given store.
func NewAnalyticsService(store RecordStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

type dailyTotals struct {
	calories float64
	proteins float64
	fats     float64
}

// SummarizeLastDays groups records from the last n days by their local
// calendar date, sums calories/proteins/fats per day, rounds each sum
// half-up to the nearest integer, and returns the days in ascending order.
// Days without records are omitted; an empty window yields an empty slice.
//
// Grouping happens in application code rather than SQL so Postgres and the
// SQLite test database produce identical results. Dates use the host's
// local calendar; cross-timezone behavior is undefined.
func (s *AnalyticsService) SummarizeLastDays(ctx context.Context, n int) ([]types.DailySummary, error) {
	since := time.Now().AddDate(0, 0, -n)
	records, err := s.store.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*dailyTotals)
	for _, rec := range records {
		day := rec.CreatedAt.Local().Format("2006-01-02")
		t, ok := totals[day]
		if !ok {
			t = &dailyTotals{}
			totals[day] = t
		}
		t.calories += rec.Calories
		t.proteins += rec.Proteins
		t.fats += rec.Fats
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	summaries := make([]types.DailySummary, 0, len(days))
	for _, day := range days {
		t := totals[day]
		summaries = append(summaries, types.DailySummary{
			Date:          day,
			TotalCalories: roundHalfUp(t.calories),
			TotalProteins: roundHalfUp(t.proteins),
			TotalFats:     roundHalfUp(t.fats),
		})
	}
	return summaries, nil
}

// roundHalfUp rounds to the nearest integer with .5 going up. Sums are
// non-negative, so math.Round's away-from-zero tie-break is half-up here.
func roundHalfUp(f float64) int {
	return int(math.Round(f))
}
