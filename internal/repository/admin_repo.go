package repository

import (
	"database/sql"
	"strconv"

	"cleanouts/internal/db"
)

type AdminRepository struct {
	DB *sql.DB
}

func NewAdminRepository(database *sql.DB) *AdminRepository {
	return &AdminRepository{DB: database}
}

func (r *AdminRepository) ListAppointments(date, status string) ([]db.Appointment, error) {
	query := `
	SELECT id, code, user_name, user_email, user_phone, address, property_type,
	       scheduled_at, status, notes, created_at, updated_at
	FROM appointments
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND DATE(scheduled_at) = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		query += " AND status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY scheduled_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appointments []db.Appointment
	for rows.Next() {
		var appt db.Appointment
		err := rows.Scan(
			&appt.ID, &appt.Code, &appt.UserName, &appt.UserEmail, &appt.UserPhone, &appt.Address,
			&appt.PropertyType, &appt.ScheduledAt, &appt.Status, &appt.Notes, &appt.CreatedAt, &appt.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appt)
	}
	return appointments, rows.Err()
}

func (r *AdminRepository) DeleteAppointment(id int) error {
	_, err := r.DB.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	return err
}
