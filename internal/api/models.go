package api

// Contact form
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Quote form
type QuoteFormRequest struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	PropertyType  string  `json:"property_type"`
	SquareFootage float64 `json:"square_footage"`
	HasHazard     bool    `json:"has_hazard"`
	HasLawn       bool    `json:"has_lawn"`
}

// Appointment scheduling
type AvailabilityRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type CreateAppointmentRequest struct {
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PropertyType string `json:"property_type"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Notes        string `json:"notes"`
}

type CreateAppointmentResponse struct {
	AppointmentCode string `json:"appointment_code"`
	Message         string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
