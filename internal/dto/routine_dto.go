package dto

type CreateTemplateRequest struct {
	TrainerID   uint    `json:"entrenadorId"`
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
}

type CreateTemplateResponse struct {
	TemplateID uint `json:"plantillaId"`
}

type TemplateExerciseItem struct {
	ExerciseID     uint     `json:"ejercicioId"`
	Position       int      `json:"orden"`
	Sets           int      `json:"series"`
	Reps           int      `json:"repeticiones"`
	TargetWeightKg *float64 `json:"pesoObjetivo"`
	RestSeconds    *int     `json:"descansoSegundos"`
	Notes          *string  `json:"notas"`
}

type AddExercisesRequest struct {
	Items []TemplateExerciseItem `json:"items"`
}

type AssignRoutineRequest struct {
	TemplateID uint    `json:"plantillaId"`
	TrainerID  uint    `json:"entrenadorId"`
	ClientID   uint    `json:"clienteId"`
	StartDate  string  `json:"fechaInicio"`
	Notes      *string `json:"notas"`
}
