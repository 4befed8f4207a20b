package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stayhungrygym/backend/internal/dto"
)

func restOf(seconds int) *int { return &seconds }

func TestEstimatedMinutes(t *testing.T) {
	// 3 sets of 40s work plus 3 x 90s configured rest.
	e := exerciseLoad{Sets: 3, RestSeconds: restOf(90)}
	require.InDelta(t, 6.5, e.estimatedMinutes(), 0.001)

	// Recorded total rest takes precedence over the per-set figure.
	e = exerciseLoad{Sets: 3, RestSeconds: restOf(90), TotalRestSeconds: 60}
	require.InDelta(t, 3.0, e.estimatedMinutes(), 0.001)

	// No rest configured at all: 90s per set assumed.
	e = exerciseLoad{Sets: 2}
	require.InDelta(t, float64(2*40+2*90)/60, e.estimatedMinutes(), 0.001)
}

func TestEstimateSessionCalories(t *testing.T) {
	// Two exercises, MET 5.0, 3 sets each with 90s rest: 13 minutes at an
	// average MET of 5.0 for an 80kg lifter burns 91 kcal.
	p := sessionPack{
		SessionID: 10,
		Date:      "2026-03-02",
		Exercises: []exerciseLoad{
			{MET: 5.0, Sets: 3, RestSeconds: restOf(90)},
			{MET: 5.0, Sets: 3, RestSeconds: restOf(90)},
		},
	}

	out := estimateSessionCalories(p, 80)
	require.Equal(t, uint(10), out.SessionID)
	require.Equal(t, 13, out.Minutes)
	require.Equal(t, 5.0, out.METAvg)
	require.Equal(t, 80.0, out.WeightKg)
	require.Equal(t, 91, out.Kcal)
}

func TestEstimateSessionCaloriesRecordedDurationWins(t *testing.T) {
	duration := 45
	p := sessionPack{
		DurationMinutes: &duration,
		Exercises:       []exerciseLoad{{MET: 6.0, Sets: 4, RestSeconds: restOf(60)}},
	}

	out := estimateSessionCalories(p, 70)
	require.Equal(t, 45, out.Minutes)
	// 6.0 * 3.5 * 70 / 200 * 45
	require.Equal(t, 331, out.Kcal)
}

func TestEstimateSessionCaloriesFallbacks(t *testing.T) {
	// No exercises and no duration: 30 assumed minutes at the default MET.
	out := estimateSessionCalories(sessionPack{}, 80)
	require.Equal(t, 30, out.Minutes)
	require.Equal(t, 3.5, out.METAvg)
	require.Equal(t, 147, out.Kcal)
}

func TestEstimateSessionCaloriesMETWeightedBySets(t *testing.T) {
	p := sessionPack{
		Exercises: []exerciseLoad{
			{MET: 8.0, Sets: 1, RestSeconds: restOf(60)},
			{MET: 4.0, Sets: 3, RestSeconds: restOf(60)},
		},
	}

	out := estimateSessionCalories(p, 80)
	// (8*1 + 4*3) / 4 sets = 5.0
	require.Equal(t, 5.0, out.METAvg)
}

func TestDailyRollup(t *testing.T) {
	sessions := []dto.SessionCalories{
		{Date: "2026-03-03", Kcal: 200},
		{Date: "2026-03-01", Kcal: 150},
		{Date: "2026-03-03", Kcal: 100},
	}

	out := dailyRollup(sessions)
	require.Equal(t, []dto.DailyCalories{
		{Date: "2026-03-01", Kcal: 150},
		{Date: "2026-03-03", Kcal: 300},
	}, out)
}
