package service

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"cleanouts/internal/entities"
	"cleanouts/internal/logger"
)

const scheduledDisplayLayout = "Monday, 02 Jan 2006 at 3:04 PM"

// SenderService composes and dispatches customer notifications.
// Sends run in goroutines; failures are logged and never surfaced to
// the form submitter.
type SenderService struct {
	log *logger.Logger
}

func NewSenderService(log *logger.Logger) *SenderService {
	return &SenderService{log: log}
}

func (s *SenderService) SendAppointmentEmail(appt entities.AppointmentResponse, status string) {
	emailData := entities.AppointmentEmailData{
		UserName:           appt.UserName,
		AppointmentCode:    appt.Code,
		Address:            appt.Address,
		ScheduledFormatted: appt.ScheduledAt.Format(scheduledDisplayLayout),
		CurrentYear:        time.Now().Year(),
		Status:             status,
	}

	emailSubject := fmt.Sprintf("Your ClearOut Cleanouts appointment is %s - Code: %s", status, appt.Code)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour cleanout appointment with ClearOut Cleanouts is %s.\n\n"+
			"Appointment Details:\n"+
			"Confirmation Code: %s\n"+
			"Address: %s\n"+
			"Scheduled: %s\n\n"+
			"Thank you for choosing ClearOut Cleanouts.\n\n"+
			"ClearOut Cleanouts. All rights reserved.",
		emailData.UserName, status, emailData.AppointmentCode, emailData.Address,
		emailData.ScheduledFormatted,
	)

	htmlBody := plainTextBody
	tmplPath := filepath.Join("internal", "templates", "appointment_email.html")
	if tmpl, err := template.ParseFiles(tmplPath); err != nil {
		s.log.Errorw("parsing appointment email template failed, using plain text", "path", tmplPath, "err", err)
	} else {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, emailData); err != nil {
			s.log.Errorw("executing appointment email template failed", "code", appt.Code, "err", err)
		} else {
			htmlBody = buf.String()
		}
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent, code string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); err != nil {
			s.log.Errorw("appointment email failed", "code", code, "err", err)
		}
	}(appt.UserEmail, appt.UserName, emailSubject, plainTextBody, htmlBody, appt.Code)
}

func (s *SenderService) SendAppointmentSMS(appt entities.AppointmentResponse, status string) {
	smsMessage := fmt.Sprintf("ClearOut Cleanouts: appointment %s is %s!\nScheduled: %s.\nMore details in your email.",
		appt.Code, status,
		appt.ScheduledAt.Format("02/01 3:04 PM"),
	)

	go func(toNumber, body, code string) {
		if err := SendSMS(toNumber, body); err != nil {
			s.log.Errorw("appointment SMS failed", "code", code, "err", err)
		}
	}(appt.UserPhone, smsMessage, appt.Code)
}

// SendInquiryAlert forwards a new contact message or quote request to
// the business inbox.
func (s *SenderService) SendInquiryAlert(kind, name, email, summary string) {
	inbox := os.Getenv("BUSINESS_INBOX_EMAIL")
	if inbox == "" {
		s.log.Warnw("BUSINESS_INBOX_EMAIL not set, inquiry alert skipped", "kind", kind)
		return
	}

	subject := fmt.Sprintf("New %s submission from %s", kind, name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, summary)

	go func() {
		if err := SendEmailWithSendGrid(inbox, "ClearOut Cleanouts", subject, body, body); err != nil {
			s.log.Errorw("inquiry alert failed", "kind", kind, "err", err)
		}
	}()
}
