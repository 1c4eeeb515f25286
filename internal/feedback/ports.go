package feedback

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("feedback not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmptyText        = errors.New("feedback text must not be empty")
)

type Feedback struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customerId"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
}

// Repo — persistence
type Repo interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Feedback, error)
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id uuid.UUID) (*Feedback, error)
	Update(ctx context.Context, f *Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerDirectory is the slice of the customers module this package
// needs: existence checks before attaching feedback.
type CustomerDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service — feedback management
type Service interface {
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]Feedback, error)
	Add(ctx context.Context, customerID uuid.UUID, text string) (*Feedback, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
