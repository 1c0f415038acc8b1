package entities

type AvailabilityResponse struct {
	Available     bool   `json:"available"`
	RequestedDate string `json:"requested_date"`
	RequestedTime string `json:"requested_time"`
	Message       string `json:"message,omitempty"`
}
