package service

import (
	"fmt"
	"net/http"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"
	apperrors "cleanouts/internal/errors"
	"cleanouts/internal/logger"
	"cleanouts/internal/repository"
)

type AdminService struct {
	adminRepo   *repository.AdminRepository
	apptRepo    *repository.AppointmentRepository
	inquiryRepo *repository.InquiryRepository
	sender      *SenderService
	log         *logger.Logger
}

func NewAdminService(adminRepo *repository.AdminRepository, apptRepo *repository.AppointmentRepository,
	inquiryRepo *repository.InquiryRepository, sender *SenderService, log *logger.Logger) *AdminService {
	return &AdminService{
		adminRepo:   adminRepo,
		apptRepo:    apptRepo,
		inquiryRepo: inquiryRepo,
		sender:      sender,
		log:         log,
	}
}

func (s *AdminService) ListAppointments(date, status string) (*entities.AppointmentsList, error) {
	appts, err := s.adminRepo.ListAppointments(date, status)
	if err != nil {
		return nil, err
	}
	list := &entities.AppointmentsList{Total: int64(len(appts))}
	for i := range appts {
		list.Appointments = append(list.Appointments, *apptToResponse(&appts[i]))
	}
	return list, nil
}

func (s *AdminService) ListInquiries(kind string) ([]db.Inquiry, error) {
	if kind != "" && kind != repository.InquiryKindContact && kind != repository.InquiryKindQuote {
		return nil, apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown inquiry kind '%s'", kind))
	}
	return s.inquiryRepo.ListInquiries(kind)
}

// UpdateAppointmentStatus moves an appointment to confirmed, canceled,
// or completed and notifies the customer on the first two.
func (s *AdminService) UpdateAppointmentStatus(id int, status string) error {
	switch status {
	case statusConfirmed, statusCanceled, statusCompleted:
	default:
		return apperrors.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unsupported status '%s'", status))
	}

	appt, err := s.apptRepo.GetAppointmentByID(id)
	if err != nil {
		return err
	}
	if err := s.apptRepo.UpdateAppointmentStatus(id, status); err != nil {
		return err
	}

	if status == statusConfirmed || status == statusCanceled {
		resp := apptToResponse(appt)
		resp.Status = status
		s.sender.SendAppointmentEmail(*resp, status)
		s.sender.SendAppointmentSMS(*resp, status)
	}

	s.log.Infow("appointment status updated", "id", id, "status", status)
	return nil
}

func (s *AdminService) DeleteAppointment(id int) error {
	return s.adminRepo.DeleteAppointment(id)
}
