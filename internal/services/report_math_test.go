package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stayhungrygym/backend/internal/dto"
)

func TestEstimate1RM(t *testing.T) {
	require.InDelta(t, 116.67, estimate1RM(100, 5), 0.01)
	require.InDelta(t, 120.33, estimate1RM(95, 8), 0.01)
	require.InDelta(t, 60, estimate1RM(60, 0), 0.001)
}

func TestRankPRsHigherEst1RMWinsOverHeavierBar(t *testing.T) {
	// 95kg x 8 estimates above 100kg x 5 despite the lighter bar.
	rows := []prCandidate{
		{ExerciseID: 1, ExerciseName: "Press de banca", UserID: 7, Day: "2026-03-02", WeightKg: 100, Reps: 5},
		{ExerciseID: 1, ExerciseName: "Press de banca", UserID: 7, Day: "2026-03-02", WeightKg: 95, Reps: 8},
	}

	out := rankPRs(rows, true, 100)
	require.Len(t, out, 1)
	require.InDelta(t, 120.33, out[0].Est1RM, 0.01)
	require.Equal(t, 95.0, out[0].MaxWeight)
	require.Equal(t, 8, out[0].MaxReps)
}

func TestRankPRsTieBreakChain(t *testing.T) {
	// Equal estimated 1RM: heavier bar wins.
	a := prCandidate{ExerciseID: 1, Day: "2026-01-01", WeightKg: 120, Reps: 0}
	b := prCandidate{ExerciseID: 1, Day: "2026-01-01", WeightKg: 100, Reps: 6}
	require.InDelta(t, estimate1RM(a.WeightKg, a.Reps), estimate1RM(b.WeightKg, b.Reps), 0.001)
	require.True(t, betterSet(a, b))
	require.False(t, betterSet(b, a))

	// Equal estimate and weight: more reps wins. A zero-weight pair keeps
	// the estimate equal at any rep count.
	c := prCandidate{ExerciseID: 1, Day: "2026-01-01", WeightKg: 0, Reps: 10}
	d := prCandidate{ExerciseID: 1, Day: "2026-01-01", WeightKg: 0, Reps: 5}
	require.True(t, betterSet(c, d))

	// Fully equal sets: the later day wins.
	e := prCandidate{ExerciseID: 1, Day: "2026-02-01", WeightKg: 80, Reps: 5}
	f := prCandidate{ExerciseID: 1, Day: "2026-01-15", WeightKg: 80, Reps: 5}
	require.True(t, betterSet(e, f))
}

func TestRankPRsPartitionPerUserDay(t *testing.T) {
	rows := []prCandidate{
		{ExerciseID: 1, ExerciseName: "Sentadilla", UserID: 1, UserName: "Ana", Day: "2026-03-01", WeightKg: 100, Reps: 5},
		{ExerciseID: 1, ExerciseName: "Sentadilla", UserID: 1, UserName: "Ana", Day: "2026-03-03", WeightKg: 102.5, Reps: 5},
		{ExerciseID: 1, ExerciseName: "Sentadilla", UserID: 2, UserName: "Luis", Day: "2026-03-01", WeightKg: 90, Reps: 5},
	}

	// Range report partitions by (exercise, user, day): three winners.
	out := rankPRs(rows, true, 100)
	require.Len(t, out, 3)
	require.Equal(t, "Ana", out[0].User)
	require.Equal(t, 102.5, out[0].MaxWeight)

	// Per-user progress partitions by exercise alone: one winner, no name.
	single := rankPRs(rows[:2], false, 50)
	require.Len(t, single, 1)
	require.Empty(t, single[0].User)
	require.Equal(t, 102.5, single[0].MaxWeight)
}

func TestRankPRsLimit(t *testing.T) {
	rows := make([]prCandidate, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, prCandidate{
			ExerciseID: uint(i + 1),
			Day:        "2026-03-01",
			WeightKg:   float64(50 + i),
			Reps:       5,
		})
	}

	out := rankPRs(rows, true, 3)
	require.Len(t, out, 3)
	// Sorted by estimated 1RM descending, so the heaviest three survive.
	require.Equal(t, 59.0, out[0].MaxWeight)
	require.Equal(t, 58.0, out[1].MaxWeight)
	require.Equal(t, 57.0, out[2].MaxWeight)
}

func TestMergeChurnZeroFillsMissingMonths(t *testing.T) {
	signups := []monthCount{
		{Period: "2026-01", N: 4},
		{Period: "2026-03", N: 2},
	}
	deactivations := []monthCount{
		{Period: "2026-02", N: 1},
		{Period: "2026-03", N: 3},
	}

	out := mergeChurn(signups, deactivations)
	require.Equal(t, []dto.ChurnRow{
		{Period: "2026-01", Signups: 4, Deactivations: 0, Net: 4},
		{Period: "2026-02", Signups: 0, Deactivations: 1, Net: -1},
		{Period: "2026-03", Signups: 2, Deactivations: 3, Net: -1},
	}, out)
}

func TestMergeChurnEmpty(t *testing.T) {
	out := mergeChurn(nil, nil)
	require.Empty(t, out)
}

func TestAdherencePct(t *testing.T) {
	require.Equal(t, 0.0, adherencePct(0, 0))
	require.Equal(t, 0.0, adherencePct(3, 0))
	require.Equal(t, 50.0, adherencePct(1, 2))
	require.Equal(t, 33.3, adherencePct(1, 3))
	require.Equal(t, 66.7, adherencePct(2, 3))
	require.Equal(t, 100.0, adherencePct(5, 5))
}
