package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

func (r *AppointmentRepository) CreateAppointment(appt *db.Appointment) error {
	query := `
		INSERT INTO appointments
		(code, user_name, user_email, user_phone, address, property_type, scheduled_at, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		appt.Code,
		appt.UserName,
		appt.UserEmail,
		appt.UserPhone,
		appt.Address,
		appt.PropertyType,
		appt.ScheduledAt,
		appt.Status,
		appt.Notes,
		appt.CreatedAt,
		appt.UpdatedAt,
	).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

func (r *AppointmentRepository) GetAppointmentByCode(code, email string) (*entities.AppointmentResponse, error) {
	var res entities.AppointmentResponse

	query := `
		SELECT code, user_name, user_email, user_phone, address, property_type,
		       status, scheduled_at, notes, created_at, updated_at
		FROM appointments
		WHERE code = $1 AND user_email = $2`

	err := r.DB.QueryRow(query, code, email).Scan(
		&res.Code, &res.UserName, &res.UserEmail, &res.UserPhone, &res.Address, &res.PropertyType,
		&res.Status, &res.ScheduledAt, &res.Notes, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment with code '%s' and email '%s' not found: %w", code, email, err)
		}
		return nil, fmt.Errorf("error querying or scanning appointment: %w", err)
	}
	return &res, nil
}

func (r *AppointmentRepository) GetAppointmentByCodeOnly(code string) (*db.Appointment, error) {
	var appt db.Appointment
	query := `
		SELECT id, code, user_name, user_email, user_phone, address, property_type, scheduled_at, status, notes, created_at, updated_at
		FROM appointments WHERE code = $1`
	err := r.DB.QueryRow(query, code).Scan(
		&appt.ID, &appt.Code, &appt.UserName, &appt.UserEmail, &appt.UserPhone, &appt.Address,
		&appt.PropertyType, &appt.ScheduledAt, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment with code '%s' not found: %w", code, err)
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	return &appt, nil
}

func (r *AppointmentRepository) CancelAppointment(code string) (string, error) {
	query := `UPDATE appointments SET status = 'canceled', updated_at = NOW() WHERE code = $1 RETURNING status`
	var status string
	err := r.DB.QueryRow(query, code).Scan(&status)
	if err != nil {
		return "", fmt.Errorf("error canceling appointment '%s': %w", code, err)
	}
	return status, nil
}

func (r *AppointmentRepository) UpdateAppointmentStatus(id int, status string) error {
	result, err := r.DB.Exec(`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating appointment %d status: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("appointment %d not found", id)
	}
	return nil
}

func (r *AppointmentRepository) GetAppointmentByID(id int) (*db.Appointment, error) {
	var appt db.Appointment
	query := `
		SELECT id, code, user_name, user_email, user_phone, address, property_type, scheduled_at, status, notes, created_at, updated_at
		FROM appointments WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&appt.ID, &appt.Code, &appt.UserName, &appt.UserEmail, &appt.UserPhone, &appt.Address,
		&appt.PropertyType, &appt.ScheduledAt, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying appointment: %w", err)
	}
	return &appt, nil
}
