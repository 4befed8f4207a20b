package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stayhungrygym/backend/internal/dto"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without executing them; the pgx pool is lazy,
// so nothing ever connects. The capture callback records each generated
// INSERT so tests can assert on the conflict clause.
func dryRunDB(t *testing.T, captured *[]string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	err = db.Callback().Create().After("gorm:create").Register("capture_sql", func(tx *gorm.DB) {
		*captured = append(*captured, tx.Statement.SQL.String())
	})
	require.NoError(t, err)
	return db
}

func weightOf(kg float64) *float64 { return &kg }

func TestAddSetUpsertsOnSetNumber(t *testing.T) {
	var captured []string
	svc := NewSessionService(dryRunDB(t, &captured))

	err := svc.AddSet(7, &dto.AddSetRequest{
		TemplateExerciseID: 3,
		SetNumber:          2,
		Reps:               8,
		WeightKg:           weightOf(82.5),
	})
	require.NoError(t, err)
	require.Len(t, captured, 1)

	// Resubmitting the same (session, exercise, set number) must overwrite
	// the row in place, not insert a second one.
	sql := captured[0]
	require.Contains(t, sql, `INSERT INTO "set_records"`)
	require.Contains(t, sql, `ON CONFLICT ("session_id","template_exercise_id","set_number") DO UPDATE SET`)
	require.Contains(t, sql, `"reps"="excluded"."reps"`)
	require.Contains(t, sql, `"weight_kg"="excluded"."weight_kg"`)
	require.Contains(t, sql, `"rpe"="excluded"."rpe"`)
	require.Contains(t, sql, `"is_max"="excluded"."is_max"`)
}

func TestAddSetRejectsIncompleteData(t *testing.T) {
	var captured []string
	svc := NewSessionService(dryRunDB(t, &captured))

	cases := []struct {
		name string
		id   uint
		req  dto.AddSetRequest
	}{
		{"missing session", 0, dto.AddSetRequest{TemplateExerciseID: 3, SetNumber: 1, Reps: 8, WeightKg: weightOf(60)}},
		{"missing exercise", 7, dto.AddSetRequest{SetNumber: 1, Reps: 8, WeightKg: weightOf(60)}},
		{"missing set number", 7, dto.AddSetRequest{TemplateExerciseID: 3, Reps: 8, WeightKg: weightOf(60)}},
		{"missing reps", 7, dto.AddSetRequest{TemplateExerciseID: 3, SetNumber: 1, WeightKg: weightOf(60)}},
		{"nil weight", 7, dto.AddSetRequest{TemplateExerciseID: 3, SetNumber: 1, Reps: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.AddSet(tc.id, &tc.req)
			require.ErrorIs(t, err, ErrIncompleteSet)
		})
	}
	require.Empty(t, captured)
}

func TestToggleExerciseUpsertsOnSessionExercise(t *testing.T) {
	var captured []string
	svc := NewSessionService(dryRunDB(t, &captured))

	require.NoError(t, svc.ToggleExercise(7, 3, true))
	require.Len(t, captured, 1)

	sql := captured[0]
	require.Contains(t, sql, `INSERT INTO "session_exercises"`)
	require.Contains(t, sql, `ON CONFLICT ("session_id","template_exercise_id") DO UPDATE SET`)
	require.Contains(t, sql, `"completed"="excluded"."completed"`)
}
