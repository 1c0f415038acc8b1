package entities

// ContactRequest is the contact form payload after the handler has
// trimmed and presence-checked the fields.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// QuoteFormRequest is the quote form payload. SquareFootage must be a
// positive finite number; the handler rejects anything else before the
// estimator runs.
type QuoteFormRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PropertyType  string  `json:"property_type"`
	SquareFootage float64 `json:"square_footage"`
	HasHazard     bool    `json:"has_hazard"`
	HasLawn       bool    `json:"has_lawn"`
}

// QuoteResponse carries the raw amount plus the display strings the
// site renders: formatted currency and fee-disclosure lines.
type QuoteResponse struct {
	Amount   float64  `json:"amount"`
	Estimate string   `json:"estimate"`
	Details  []string `json:"details"`
}
