package service

import (
	"fmt"
	"time"

	"cleanouts/internal/logger"
	"cleanouts/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
	log  *logger.Logger
}

func NewJobService(repo *repository.JobRepository, log *logger.Logger) *JobService {
	return &JobService{Repo: repo, log: log}
}

// CompletePastAppointments finds confirmed appointments whose slot has
// passed and marks them completed.
func (s *JobService) CompletePastAppointments() error {
	ids, err := s.Repo.GetConfirmedAppointmentIDsPastSlot()
	if err != nil {
		return fmt.Errorf("cron job: failed to get confirmed appointments past slot: %w", err)
	}
	if len(ids) == 0 {
		s.log.Infow("cron job: no confirmed appointments past their slot")
		return nil
	}

	updated, err := s.Repo.UpdateAppointmentStatuses(ids, statusCompleted)
	if err != nil {
		return fmt.Errorf("cron job: failed to update appointment statuses: %w", err)
	}
	s.log.Infow("cron job: marked appointments completed", "count", updated)
	return nil
}

// PurgeOldSubmissions drops unconfirmed appointment requests and
// inquiries older than the cutoff.
func (s *JobService) PurgeOldSubmissions(before time.Time) error {
	appts, err := s.Repo.DeletePendingAppointmentsOlderThan(before)
	if err != nil {
		return fmt.Errorf("cron job: failed to purge pending appointments: %w", err)
	}
	inquiries, err := s.Repo.DeleteInquiriesOlderThan(before)
	if err != nil {
		return fmt.Errorf("cron job: failed to purge inquiries: %w", err)
	}
	s.log.Infow("cron job: purged old submissions", "appointments", appts, "inquiries", inquiries, "before", before)
	return nil
}
