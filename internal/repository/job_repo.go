package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetConfirmedAppointmentIDsPastSlot returns IDs of confirmed
// appointments whose scheduled slot has already passed.
func (r *JobRepository) GetConfirmedAppointmentIDsPastSlot() ([]int, error) {
	query := `SELECT id FROM appointments WHERE status = 'confirmed' AND scheduled_at < NOW()`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed appointments past slot: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning appointment ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) UpdateAppointmentStatuses(ids []int, newStatus string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error updating appointment statuses: %w", err)
	}
	return result.RowsAffected()
}

// DeletePendingAppointmentsOlderThan removes appointment requests that
// were never confirmed and are older than the given cutoff.
func (r *JobRepository) DeletePendingAppointmentsOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM appointments WHERE status = 'pending' AND created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting old pending appointments: %w", err)
	}
	return result.RowsAffected()
}

func (r *JobRepository) DeleteInquiriesOlderThan(before time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM inquiries WHERE created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting old inquiries: %w", err)
	}
	return result.RowsAffected()
}
