package service

import (
	"sort"

	"ops-tracker/internal/model"
)

// expectedWorkingDays is the naive per-month baseline the days-missed metric
// is measured against.
const expectedWorkingDays = 22

// BuildMonthlyStats projects per-user stats for one month. Pure and
// deterministic: output order follows the input user list, admins are skipped,
// users without updates get zero-filled rows.
func BuildMonthlyStats(users []model.User, updates []model.DailyUpdate, month string) []model.MonthlyStats {
	stats := make([]model.MonthlyStats, 0, len(users))
	for _, u := range users {
		if u.Role != model.RoleUser {
			continue
		}
		var (
			count      int
			totalHours float64
			scoreSum   int
		)
		for _, up := range updates {
			if up.UserID != u.ID || up.Month != month {
				continue
			}
			count++
			totalHours += up.TotalTime
			scoreSum += up.ProductivityScore
		}
		avg := 0.0
		if count > 0 {
			avg = float64(scoreSum) / float64(count)
		}
		daysMissed := expectedWorkingDays - count
		if daysMissed < 0 {
			daysMissed = 0
		}
		stats = append(stats, model.MonthlyStats{
			UserID:           u.ID,
			Name:             u.Name,
			UpdatesSubmitted: count,
			TotalHours:       totalHours,
			AvgProductivity:  avg,
			DaysMissed:       daysMissed,
		})
	}
	return stats
}

// CategoryHours sums logged hours per task category across the given updates.
func CategoryHours(updates []model.DailyUpdate) map[model.TaskCategory]float64 {
	hours := map[model.TaskCategory]float64{
		model.CategoryHPA: 0,
		model.CategoryCTA: 0,
		model.CategoryLPA: 0,
	}
	for _, up := range updates {
		for _, t := range up.Tasks {
			if _, ok := hours[t.Category]; ok {
				hours[t.Category] += t.TimeSpent
			}
		}
	}
	return hours
}

// ScoreSeries returns one chart point per update, ordered by date ascending.
// The input slice is not modified.
func ScoreSeries(updates []model.DailyUpdate) []model.SeriesPoint {
	sorted := make([]model.DailyUpdate, len(updates))
	copy(sorted, updates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	series := make([]model.SeriesPoint, 0, len(sorted))
	for _, up := range sorted {
		series = append(series, model.SeriesPoint{
			Date:  up.Date,
			Score: up.ProductivityScore,
			Hours: up.TotalTime,
		})
	}
	return series
}

// BuildMonthSummary bundles the chart reductions the report viewer renders
// next to the generated text.
func BuildMonthSummary(updates []model.DailyUpdate) model.MonthSummary {
	var totalHours float64
	var scoreSum int
	for _, up := range updates {
		totalHours += up.TotalTime
		scoreSum += up.ProductivityScore
	}
	avg := 0.0
	if len(updates) > 0 {
		avg = float64(scoreSum) / float64(len(updates))
	}
	return model.MonthSummary{
		TotalHours:      totalHours,
		AvgProductivity: avg,
		DaysLogged:      len(updates),
		CategoryHours:   CategoryHours(updates),
		Series:          ScoreSeries(updates),
	}
}
