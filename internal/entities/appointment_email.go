package entities

type AppointmentEmailData struct {
	UserName           string
	AppointmentCode    string
	Address            string
	ScheduledFormatted string
	CurrentYear        int
	Status             string
}
