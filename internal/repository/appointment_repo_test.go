package repository_test

import (
	"regexp"
	"testing"
	"time"

	"cleanouts/internal/db"
	"cleanouts/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentRepository_CreateAppointment(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := repository.NewAppointmentRepository(database)

	now := time.Date(2024, time.June, 3, 12, 0, 0, 0, time.UTC)
	appt := &db.Appointment{
		Code:         "0A1B2C3D",
		UserName:     "Dana Reyes",
		UserEmail:    "dana@example.com",
		UserPhone:    "+15551234567",
		Address:      "18 Maple St",
		PropertyType: "residential",
		ScheduledAt:  time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
		Status:       "pending",
		Notes:        "basement cleanout",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
		WithArgs(appt.Code, appt.UserName, appt.UserEmail, appt.UserPhone, appt.Address,
			appt.PropertyType, appt.ScheduledAt, appt.Status, appt.Notes, appt.CreatedAt, appt.UpdatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, now, now))

	require.NoError(t, repo.CreateAppointment(appt))
	assert.Equal(t, 42, appt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_CancelAppointment(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := repository.NewAppointmentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE appointments SET status = 'canceled'")).
		WithArgs("0A1B2C3D").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("canceled"))

	status, err := repo.CancelAppointment("0A1B2C3D")
	require.NoError(t, err)
	assert.Equal(t, "canceled", status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_GetAppointmentByCode_NotFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := repository.NewAppointmentRepository(database)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).
		WithArgs("NOPE", "nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"code"}))

	_, err = repo.GetAppointmentByCode("NOPE", "nobody@example.com")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentRepository_UpdateAppointmentStatus_NotFound(t *testing.T) {
	database, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	repo := repository.NewAppointmentRepository(database)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1")).
		WithArgs("confirmed", 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateAppointmentStatus(7, "confirmed")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
