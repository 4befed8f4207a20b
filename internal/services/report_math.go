package services

import (
	"math"
	"sort"

	"github.com/stayhungrygym/backend/internal/dto"
)

// prCandidate is one set eligible for PR ranking. The fetch queries filter
// out NULL weight/reps rows, so both values are always present here.
type prCandidate struct {
	ExerciseID   uint    `gorm:"column:exercise_id"`
	ExerciseName string  `gorm:"column:exercise_name"`
	UserID       uint    `gorm:"column:user_id"`
	UserName     string  `gorm:"column:user_name"`
	Day          string  `gorm:"column:day"`
	WeightKg     float64 `gorm:"column:weight_kg"`
	Reps         int     `gorm:"column:reps"`
}

// estimate1RM applies the Epley-style linear formula used across the app.
func estimate1RM(weightKg float64, reps int) float64 {
	return weightKg * (1 + float64(reps)/30.0)
}

type prKey struct {
	ExerciseID uint
	UserID     uint
	Day        string
}

// betterSet is the strict ranking order inside one partition: estimated 1RM
// desc, then raw weight desc, then reps desc, then recency.
func betterSet(a, b prCandidate) bool {
	ea, eb := estimate1RM(a.WeightKg, a.Reps), estimate1RM(b.WeightKg, b.Reps)
	if ea != eb {
		return ea > eb
	}
	if a.WeightKg != b.WeightKg {
		return a.WeightKg > b.WeightKg
	}
	if a.Reps != b.Reps {
		return a.Reps > b.Reps
	}
	return a.Day > b.Day
}

// rankPRs keeps the single best set per partition and returns them sorted by
// estimated 1RM descending, capped at limit. With perUserDay set the
// partition key is (exercise, user, day); otherwise exercise alone, for the
// single-user progress report.
func rankPRs(rows []prCandidate, perUserDay bool, limit int) []dto.PRRow {
	best := make(map[prKey]prCandidate)
	order := make([]prKey, 0)
	for _, r := range rows {
		key := prKey{ExerciseID: r.ExerciseID}
		if perUserDay {
			key.UserID = r.UserID
			key.Day = r.Day
		}
		cur, ok := best[key]
		if !ok {
			best[key] = r
			order = append(order, key)
			continue
		}
		if betterSet(r, cur) {
			best[key] = r
		}
	}

	winners := make([]prCandidate, 0, len(order))
	for _, key := range order {
		winners = append(winners, best[key])
	}
	sort.SliceStable(winners, func(i, j int) bool {
		return betterSet(winners[i], winners[j])
	})

	if limit > 0 && len(winners) > limit {
		winners = winners[:limit]
	}

	out := make([]dto.PRRow, 0, len(winners))
	for _, w := range winners {
		row := dto.PRRow{
			Exercise:  w.ExerciseName,
			Est1RM:    round2(estimate1RM(w.WeightKg, w.Reps)),
			MaxWeight: w.WeightKg,
			MaxReps:   w.Reps,
			Date:      w.Day,
		}
		if perUserDay {
			row.User = w.UserName
		}
		out = append(out, row)
	}
	return out
}

// monthCount is one (YYYY-MM, count) bucket from a churn query.
type monthCount struct {
	Period string `gorm:"column:period"`
	N      int    `gorm:"column:n"`
}

// mergeChurn joins the signup and deactivation series by month. Months
// present on only one side get a zero on the other; output is sorted by
// month ascending with net = signups - deactivations.
func mergeChurn(signups, deactivations []monthCount) []dto.ChurnRow {
	byPeriod := make(map[string]*dto.ChurnRow)
	for _, s := range signups {
		byPeriod[s.Period] = &dto.ChurnRow{Period: s.Period, Signups: s.N}
	}
	for _, d := range deactivations {
		row, ok := byPeriod[d.Period]
		if !ok {
			row = &dto.ChurnRow{Period: d.Period}
			byPeriod[d.Period] = row
		}
		row.Deactivations = d.N
	}

	periods := make([]string, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Strings(periods)

	out := make([]dto.ChurnRow, 0, len(periods))
	for _, p := range periods {
		row := *byPeriod[p]
		row.Net = row.Signups - row.Deactivations
		out = append(out, row)
	}
	return out
}

// adherencePct is the percentage of clients with logged sets, one decimal.
// Zero clients yields 0, never a division error.
func adherencePct(withSets, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round1(float64(withSets) * 100 / float64(total))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
