package feedback

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo      Repo
	customers CustomerDirectory
}

func NewService(repo Repo, customers CustomerDirectory) Service {
	return &service{repo: repo, customers: customers}
}

func (s *service) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Feedback, error) {
	items, err := s.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return items, nil
}

func (s *service) Add(ctx context.Context, customerID uuid.UUID, text string) (*Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	ok, err := s.customers.Exists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("check customer: %w", err)
	}
	if !ok {
		return nil, ErrCustomerNotFound
	}

	f := &Feedback{
		ID:         uuid.New(),
		CustomerID: customerID,
		Text:       text,
		Date:       time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	log.Info().Str("feedback", f.ID.String()).Str("customer", customerID.String()).Msg("feedback added")
	return f, nil
}

func (s *service) UpdateText(ctx context.Context, id uuid.UUID, text string) (*Feedback, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	f.Text = text
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("update feedback: %w", err)
	}

	log.Info().Str("feedback", id.String()).Msg("feedback updated")
	return f, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("feedback", id.String()).Msg("feedback deleted")
	return nil
}
