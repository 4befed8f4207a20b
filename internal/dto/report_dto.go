package dto

// ChurnRow is one calendar month of signups vs deactivations.
type ChurnRow struct {
	Period        string `json:"periodo"`
	Signups       int    `json:"altas"`
	Deactivations int    `json:"bajas"`
	Net           int    `json:"neto"`
}

type AdherenceOverall struct {
	ClientsWithSets int     `json:"clientes_con_sets"`
	TotalClients    int     `json:"total_clientes"`
	AdherencePct    float64 `json:"adherencia_pct"`
}

type TrainerAdherenceRow struct {
	Trainer         string  `json:"entrenador"`
	TotalClients    int     `json:"total_clientes"`
	ClientsWithSets int     `json:"clientes_con_sets"`
	AdherencePct    float64 `json:"adherencia_pct"`
}

type AdherenceResponse struct {
	Overall   AdherenceOverall      `json:"overall"`
	ByTrainer []TrainerAdherenceRow `json:"by_trainer"`
}

type VolumeRow struct {
	ISOWeek   string  `gorm:"column:iso_week" json:"iso_week"`
	TotalLoad float64 `gorm:"column:carga_total" json:"carga_total"`
}

// PRRow is one best estimated-1RM set. User is empty on the per-user
// progress endpoint and populated on the range-wide admin report.
type PRRow struct {
	Exercise  string  `json:"ejercicio"`
	Est1RM    float64 `json:"est_1rm"`
	MaxWeight float64 `json:"max_peso"`
	MaxReps   int     `json:"max_reps"`
	Date      string  `json:"date"`
	User      string  `json:"usuario,omitempty"`
}

type TrainerClientsRow struct {
	Trainer string `gorm:"column:entrenador" json:"entrenador"`
	Clients int    `gorm:"column:clientes" json:"clientes"`
}

type TrainerClientsResponse struct {
	Rows       []TrainerClientsRow `json:"rows"`
	Unassigned int                 `json:"sin_asignar"`
}
