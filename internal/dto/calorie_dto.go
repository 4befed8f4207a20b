package dto

// SessionCalories is the per-session estimate produced by the calorie engine.
type SessionCalories struct {
	SessionID uint    `json:"sesion_id"`
	Date      string  `json:"date"`
	Minutes   int     `json:"minutos"`
	METAvg    float64 `json:"met_prom"`
	WeightKg  float64 `json:"peso_kg"`
	Kcal      int     `json:"kcal"`
}

type DailyCalories struct {
	Date string `json:"date"`
	Kcal int    `json:"kcal"`
}

type CaloriesRangeResponse struct {
	Sessions []SessionCalories `json:"sessions"`
	Daily    []DailyCalories   `json:"daily"`
}
