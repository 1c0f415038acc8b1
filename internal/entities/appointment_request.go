package entities

import "time"

type AppointmentRequest struct {
	UserName     string `json:"user_name"`
	UserEmail    string `json:"user_email"`
	UserPhone    string `json:"user_phone"`
	Address      string `json:"address"`
	PropertyType string `json:"property_type"`
	Date         string `json:"date"` // 2006-01-02
	Time         string `json:"time"` // 15:04
	Notes        string `json:"notes"`
}

type AppointmentResponse struct {
	Code         string    `json:"code"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"user_email"`
	UserPhone    string    `json:"user_phone"`
	Address      string    `json:"address"`
	PropertyType string    `json:"property_type"`
	Status       string    `json:"status"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
