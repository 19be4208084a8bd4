package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"ipoadvisor/internal/model"
	"ipoadvisor/internal/repository"
)

// LeadService handles the two public forms and their admin follow-up.
type LeadService interface {
	SubmitContact(ctx context.Context, req model.ContactRequest) (model.Contact, error)
	SubmitApplication(ctx context.Context, req model.ApplicationRequest) (model.Application, error)

	ListContacts(ctx context.Context) ([]model.Contact, error)
	// UpdateContact merges the non-nil fields of upd into the stored contact.
	UpdateContact(ctx context.Context, id string, upd model.ContactUpdate) (model.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	ListApplications(ctx context.Context) ([]model.Application, error)
	UpdateApplication(ctx context.Context, id string, upd model.ApplicationUpdate) (model.Application, error)
	DeleteApplication(ctx context.Context, id string) error
}

type leadService struct {
	contacts     repository.ContactRepository
	applications repository.ApplicationRepository
	now          func() time.Time
}

func NewLeadService(contacts repository.ContactRepository, applications repository.ApplicationRepository) LeadService {
	return &leadService{contacts: contacts, applications: applications, now: time.Now}
}

func (s *leadService) SubmitContact(ctx context.Context, req model.ContactRequest) (model.Contact, error) {
	c := model.Contact{
		ID:             uuid.NewString(),
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		AnnualTurnover: req.AnnualTurnover,
		MobileNumber:   req.MobileNumber,
		Email:          req.Email,
		Message:        req.Message,
		Status:         model.ContactPending,
		CreatedAt:      timestamp(s.now()),
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return model.Contact{}, err
	}
	return c, nil
}

func (s *leadService) SubmitApplication(ctx context.Context, req model.ApplicationRequest) (model.Application, error) {
	a := model.Application{
		ID:             uuid.NewString(),
		Name:           req.Name,
		CompanyName:    req.CompanyName,
		AnnualTurnover: req.AnnualTurnover,
		MobileNumber:   req.MobileNumber,
		Status:         model.ApplicationPending,
		CreatedAt:      timestamp(s.now()),
	}
	if err := s.applications.Create(ctx, a); err != nil {
		return model.Application{}, err
	}
	return a, nil
}

func (s *leadService) ListContacts(ctx context.Context) ([]model.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *leadService) UpdateContact(ctx context.Context, id string, upd model.ContactUpdate) (model.Contact, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return model.Contact{}, ErrInvalidStatus
	}
	c, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return model.Contact{}, mapNotFound(err)
	}
	if upd.Status != nil {
		c.Status = *upd.Status
	}
	if upd.Notes != nil {
		c.Notes = upd.Notes
	}
	if err := s.contacts.Update(ctx, c); err != nil {
		return model.Contact{}, mapNotFound(err)
	}
	return c, nil
}

func (s *leadService) DeleteContact(ctx context.Context, id string) error {
	return mapNotFound(s.contacts.Delete(ctx, id))
}

func (s *leadService) ListApplications(ctx context.Context) ([]model.Application, error) {
	return s.applications.List(ctx)
}

func (s *leadService) UpdateApplication(ctx context.Context, id string, upd model.ApplicationUpdate) (model.Application, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return model.Application{}, ErrInvalidStatus
	}
	a, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return model.Application{}, mapNotFound(err)
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if err := s.applications.Update(ctx, a); err != nil {
		return model.Application{}, mapNotFound(err)
	}
	return a, nil
}

func (s *leadService) DeleteApplication(ctx context.Context, id string) error {
	return mapNotFound(s.applications.Delete(ctx, id))
}

func mapNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
