package dto

type WeightPoint struct {
	Date     string  `gorm:"column:date" json:"date"`
	WeightKg float64 `gorm:"column:weight" json:"weight"`
}

type BMIPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"peso_kg"`
	BMI      float64 `json:"bmi"`
}
