package service

import (
	"fmt"
	"net/http"
	"time"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"
	apperrors "cleanouts/internal/errors"
	"cleanouts/internal/logger"
	"cleanouts/internal/schedule"
	"cleanouts/internal/utils"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCompleted = "completed"
	statusCanceled  = "canceled"
)

// Cancellations are only accepted with this much notice before the
// scheduled slot.
const cancellationNotice = 12 * time.Hour

const (
	msgSlotAvailable   = "That time works! We'll see you then."
	msgSlotUnavailable = "We schedule appointments Monday through Friday between 8:00 AM and 5:00 PM. Please pick another time."
)

type AppointmentStore interface {
	CreateAppointment(appt *db.Appointment) error
	GetAppointmentByCode(code, email string) (*entities.AppointmentResponse, error)
	GetAppointmentByCodeOnly(code string) (*db.Appointment, error)
	CancelAppointment(code string) (string, error)
}

type AppointmentNotifier interface {
	SendAppointmentEmail(appt entities.AppointmentResponse, status string)
	SendAppointmentSMS(appt entities.AppointmentResponse, status string)
}

type AppointmentService struct {
	Repo   AppointmentStore
	sender AppointmentNotifier
	log    *logger.Logger
}

func NewAppointmentService(repo AppointmentStore, sender AppointmentNotifier, log *logger.Logger) *AppointmentService {
	return &AppointmentService{Repo: repo, sender: sender, log: log}
}

// CheckAvailability wraps the pure window check with the messages the
// site renders. Malformed date/time input resolves to unavailable.
func (s *AppointmentService) CheckAvailability(date, timeOfDay string) *entities.AvailabilityResponse {
	resp := &entities.AvailabilityResponse{
		RequestedDate: date,
		RequestedTime: timeOfDay,
	}
	if schedule.IsAvailable(date, timeOfDay) {
		resp.Available = true
		resp.Message = msgSlotAvailable
	} else {
		resp.Message = msgSlotUnavailable
	}
	return resp
}

func (s *AppointmentService) CreateAppointment(req *entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	slot, err := schedule.ParseSlot(req.Date, req.Time)
	if err != nil {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, "invalid appointment date or time")
	}
	if !schedule.WithinBusinessHours(slot) {
		return nil, apperrors.ErrConflict(msgSlotUnavailable)
	}

	code := fmt.Sprintf("%08X", time.Now().UnixNano()%100000000)

	appt := &db.Appointment{
		Code:         code,
		UserName:     req.UserName,
		UserEmail:    req.UserEmail,
		UserPhone:    utils.NormalizePhone(req.UserPhone),
		Address:      req.Address,
		PropertyType: req.PropertyType,
		ScheduledAt:  slot,
		Status:       statusPending,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.CreateAppointment(appt); err != nil {
		s.log.Errorw("creating appointment in repository failed", "code", code, "err", err)
		return nil, err
	}

	resp := apptToResponse(appt)
	s.sender.SendAppointmentEmail(*resp, statusPending)
	s.sender.SendAppointmentSMS(*resp, statusPending)

	s.log.Infow("appointment request received", "code", code, "scheduled_at", slot)
	return resp, nil
}

func (s *AppointmentService) GetAppointmentByCode(code, email string) (*entities.AppointmentResponse, error) {
	return s.Repo.GetAppointmentByCode(code, email)
}

func (s *AppointmentService) CancelAppointment(code string) error {
	appt, err := s.Repo.GetAppointmentByCodeOnly(code)
	if err != nil {
		return err
	}

	if appt.ScheduledAt.Sub(time.Now().UTC()) < cancellationNotice {
		return apperrors.ErrConflict("appointments can only be canceled more than 12 hours before the scheduled time")
	}

	if _, err := s.Repo.CancelAppointment(code); err != nil {
		return err
	}

	resp := apptToResponse(appt)
	resp.Status = statusCanceled
	s.sender.SendAppointmentEmail(*resp, statusCanceled)
	s.sender.SendAppointmentSMS(*resp, statusCanceled)
	return nil
}

func apptToResponse(appt *db.Appointment) *entities.AppointmentResponse {
	return &entities.AppointmentResponse{
		Code:         appt.Code,
		UserName:     appt.UserName,
		UserEmail:    appt.UserEmail,
		UserPhone:    appt.UserPhone,
		Address:      appt.Address,
		PropertyType: appt.PropertyType,
		Status:       appt.Status,
		ScheduledAt:  appt.ScheduledAt,
		Notes:        appt.Notes,
		CreatedAt:    appt.CreatedAt,
		UpdatedAt:    appt.UpdatedAt,
	}
}
