package services

import (
	"fmt"
	"log"
	"time"

	"satyaphoto/internal/domain"
	"satyaphoto/internal/repos"
	"satyaphoto/internal/validate"
)

type InquiryForm struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	EventType string `json:"event_type"`
	EventDate string `json:"event_date"`
	Message   string `json:"message"`
}

type InquiryService struct {
	Inquiries *repos.InquiryRepo
	Mail      *EmailService

	// Now is swapped in tests to pin the "today or later" date check.
	Now func() time.Time
}

func NewInquiryService(inquiries *repos.InquiryRepo, mail *EmailService) *InquiryService {
	return &InquiryService{Inquiries: inquiries, Mail: mail}
}

func (s *InquiryService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Submit validates the form, stores the inquiry, and fires the two
// notification emails in the background. Email failures never fail the
// submission. The returned map holds field-level validation errors; a
// non-empty map means nothing was stored.
func (s *InquiryService) Submit(form InquiryForm) (domain.InquiryRecord, map[string]string, error) {
	fieldErrs := map[string]string{}

	name, ok := validate.Name(form.Name)
	if !ok {
		fieldErrs["name"] = "Name must be between 2 and 100 characters"
	}
	email, ok := validate.Email(form.Email)
	if !ok {
		fieldErrs["email"] = "Invalid email address"
	}
	phone, ok := validate.Phone(form.Phone)
	if !ok {
		fieldErrs["phone"] = "Phone number must be between 10 and 15 digits"
	}
	eventType, ok := validate.Category(form.EventType)
	if !ok {
		fieldErrs["event_type"] = "Invalid event type"
	}
	eventDate, ok := validate.EventDate(form.EventDate, s.clock())
	if !ok {
		fieldErrs["event_date"] = "Event date must be today or in the future"
	}
	message, ok := validate.Message(form.Message)
	if !ok {
		fieldErrs["message"] = "Message too long"
	}
	if len(fieldErrs) > 0 {
		return domain.InquiryRecord{}, fieldErrs, nil
	}

	rec := domain.InquiryRecord{
		ID:          fmt.Sprintf("contact-%d", s.clock().UnixNano()),
		Name:        name,
		Email:       email,
		Phone:       phone,
		EventType:   eventType,
		EventDate:   eventDate,
		Message:     message,
		SubmittedAt: s.clock().UTC().Format(time.RFC3339),
	}
	if err := s.Inquiries.Insert(rec); err != nil {
		return domain.InquiryRecord{}, nil, fmt.Errorf("save inquiry: %w", err)
	}

	if s.Mail != nil {
		go func(rec domain.InquiryRecord) {
			if err := s.Mail.SendOwnerNotification(rec); err != nil {
				log.Printf("[contact] owner notification failed for %s: %v", rec.ID, err)
			}
			if err := s.Mail.SendUserConfirmation(rec); err != nil {
				log.Printf("[contact] user confirmation failed for %s: %v", rec.ID, err)
			}
		}(rec)
	}
	return rec, nil, nil
}

// List returns every stored inquiry, newest first (owner only).
func (s *InquiryService) List() ([]domain.InquiryRecord, error) {
	return s.Inquiries.List()
}
