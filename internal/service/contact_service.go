package service

import (
	"time"

	"cleanouts/internal/db"
	"cleanouts/internal/entities"
	"cleanouts/internal/logger"
	"cleanouts/internal/repository"
	"cleanouts/internal/utils"
)

type ContactService struct {
	Repo   InquiryStore
	sender InquiryNotifier
	log    *logger.Logger
}

func NewContactService(repo InquiryStore, sender InquiryNotifier, log *logger.Logger) *ContactService {
	return &ContactService{Repo: repo, sender: sender, log: log}
}

func (s *ContactService) SubmitContact(req entities.ContactRequest) error {
	iq := &db.Inquiry{
		Kind:      repository.InquiryKindContact,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     utils.NormalizePhone(req.Phone),
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateInquiry(iq); err != nil {
		s.log.Errorw("recording contact message failed", "email", req.Email, "err", err)
		return err
	}

	s.sender.SendInquiryAlert(repository.InquiryKindContact, req.Name, req.Email, req.Message)
	s.log.Infow("contact message received", "email", req.Email)
	return nil
}
