package services

import (
	"math"
	"sort"

	"github.com/stayhungrygym/backend/internal/dto"
)

// defaultMET is the fallback metabolic equivalent for exercises without a
// configured value.
const defaultMET = 3.5

// Session-duration estimation constants: assumed seconds of work per set,
// and fallback rest per set when the template has none configured.
const (
	secondsPerSet      = 40
	defaultRestSeconds = 90
	fallbackMinutes    = 30.0
)

// exerciseLoad is the per-exercise slice of one session as the calorie
// query shapes it: set count plus the rest configuration of the template.
type exerciseLoad struct {
	MET              float64
	Sets             int
	RestSeconds      *int
	TotalRestSeconds int
}

// sessionPack groups one session's exercises for estimation.
type sessionPack struct {
	SessionID       uint
	Date            string
	DurationMinutes *int
	Exercises       []exerciseLoad
}

// estimatedMinutes returns the elapsed minutes for one exercise when the
// session has no recorded duration: 40s of work per set plus the summed
// rest, falling back to 90s of rest per set when none is configured.
func (e exerciseLoad) estimatedMinutes() float64 {
	work := e.Sets * secondsPerSet
	rest := e.TotalRestSeconds
	if rest == 0 {
		per := defaultRestSeconds
		if e.RestSeconds != nil && *e.RestSeconds > 0 {
			per = *e.RestSeconds
		}
		rest = e.Sets * per
	}
	return float64(work+rest) / 60
}

// estimateSessionCalories applies the standard MET energy formula to one
// session: kcal = met_avg * 3.5 * weight_kg / 200 * minutes.
func estimateSessionCalories(p sessionPack, weightKg float64) dto.SessionCalories {
	minutes := 0.0
	if p.DurationMinutes != nil {
		minutes = float64(*p.DurationMinutes)
	}
	if minutes == 0 {
		for _, e := range p.Exercises {
			minutes += e.estimatedMinutes()
		}
	}
	if minutes <= 0 {
		minutes = fallbackMinutes
	}

	metAvg := defaultMET
	if len(p.Exercises) > 0 {
		totalSets := 0
		weighted := 0.0
		for _, e := range p.Exercises {
			sets := e.Sets
			if sets == 0 {
				sets = 1
			}
			totalSets += e.Sets
			weighted += e.MET * float64(sets)
		}
		if totalSets == 0 {
			totalSets = 1
		}
		metAvg = weighted / float64(totalSets)
	}

	kcal := metAvg * 3.5 * weightKg / 200 * minutes

	return dto.SessionCalories{
		SessionID: p.SessionID,
		Date:      p.Date,
		Minutes:   int(math.Round(minutes)),
		METAvg:    round2(metAvg),
		WeightKg:  weightKg,
		Kcal:      int(math.Round(kcal)),
	}
}

// dailyRollup sums per-session kcal by calendar date, ascending.
func dailyRollup(sessions []dto.SessionCalories) []dto.DailyCalories {
	byDate := make(map[string]int)
	for _, s := range sessions {
		byDate[s.Date] += s.Kcal
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	out := make([]dto.DailyCalories, 0, len(dates))
	for _, d := range dates {
		out = append(out, dto.DailyCalories{Date: d, Kcal: byDate[d]})
	}
	return out
}
