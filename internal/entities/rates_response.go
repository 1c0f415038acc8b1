package entities

type RateLine struct {
	PropertyType string  `json:"property_type"`
	Multiplier   float64 `json:"multiplier"`
}

type RatesResponse struct {
	BaseRatePerSquareFoot float64    `json:"base_rate_per_sq_ft"`
	Multipliers           []RateLine `json:"multipliers"`
	HazardSurcharge       float64    `json:"hazard_surcharge"`
	LawnPromoSurcharge    float64    `json:"lawn_promo_surcharge"`
	Disclaimer            string     `json:"disclaimer"`
}
