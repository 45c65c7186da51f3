package services

import (
	"errors"
	"time"

	"sbsoverseas/internal/domain"
	"sbsoverseas/internal/repos"

	"github.com/google/uuid"
)

var ErrMissingContact = errors.New("name and email are required")

type SubmissionService struct {
	Subs *repos.SubmissionRepo
}

func NewSubmissionService(subs *repos.SubmissionRepo) *SubmissionService {
	return &SubmissionService{Subs: subs}
}

// Save assigns id and timestamp and appends the submission to the collection
// picked by its type. Anything that is not an order is stored as a contact
// inquiry.
func (s *SubmissionService) Save(sub domain.Submission) (domain.Submission, error) {
	if sub.Name == "" || sub.Email == "" {
		return domain.Submission{}, ErrMissingContact
	}
	if sub.Type != domain.SubmissionOrder {
		sub.Type = domain.SubmissionContact
	}
	sub.ID = uuid.NewString()
	sub.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	if err := s.Subs.Save(sub); err != nil {
		return domain.Submission{}, err
	}
	return sub, nil
}

func (s *SubmissionService) List(subType string) ([]domain.Submission, error) {
	return s.Subs.List(subType)
}

func (s *SubmissionService) DeleteByID(id, subType string) error {
	return s.Subs.DeleteByID(id, subType)
}

func (s *SubmissionService) Count(subType string) (int, error) {
	return s.Subs.Count(subType)
}
