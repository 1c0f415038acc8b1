package entities

type AppointmentsList struct {
	Total        int64                 `json:"total"`
	Appointments []AppointmentResponse `json:"appointments"`
}
