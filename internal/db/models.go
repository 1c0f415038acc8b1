package db

import "time"

type Appointment struct {
	ID           int
	Code         string
	UserName     string
	UserEmail    string
	UserPhone    string
	Address      string
	PropertyType string
	ScheduledAt  time.Time
	Status       string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Inquiry holds both contact messages and quote requests; Kind
// distinguishes them and the quote columns stay zero for contacts.
type Inquiry struct {
	ID              int
	Kind            string // "contact" or "quote"
	Name            string
	Email           string
	Phone           string
	Message         string
	PropertyType    string
	SquareFootage   float64
	HasHazard       bool
	HasLawn         bool
	EstimatedAmount float64
	CreatedAt       time.Time
}
