package customers

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("customer not found")
	ErrConflict = errors.New("customer already exists")
)

type Customer struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Username   string    `json:"username"`
	Password   string    `json:"-"`
	DOB        string    `json:"dob,omitempty"` // YYYY-MM-DD
	Gender     string    `json:"gender,omitempty"`
	Address    string    `json:"address,omitempty"`
	PostalCode string    `json:"postalCode,omitempty"`
	Country    string    `json:"country,omitempty"`
	State      string    `json:"state,omitempty"`
	City       string    `json:"city,omitempty"`
	Interests  []string  `json:"interests,omitempty"`
	Newsletter bool      `json:"newsletter"`
	Terms      bool      `json:"terms"`
}

// Update carries a partial customer update; nil fields are left untouched.
type Update struct {
	FirstName  *string   `json:"firstName"`
	LastName   *string   `json:"lastName"`
	Email      *string   `json:"email"`
	Phone      *string   `json:"phone"`
	DOB        *string   `json:"dob"`
	Gender     *string   `json:"gender"`
	Address    *string   `json:"address"`
	PostalCode *string   `json:"postalCode"`
	Country    *string   `json:"country"`
	State      *string   `json:"state"`
	City       *string   `json:"city"`
	Interests  *[]string `json:"interests"`
	Newsletter *bool     `json:"newsletter"`
	Terms      *bool     `json:"terms"`
	Password   *string   `json:"password"`
}

// Page mirrors the paginated list shape the frontend consumes.
type Page struct {
	Content       []Customer `json:"content"`
	TotalElements int        `json:"totalElements"`
	TotalPages    int        `json:"totalPages"`
	Number        int        `json:"number"`
	Size          int        `json:"size"`
}

// Repo — persistence
type Repo interface {
	Create(ctx context.Context, c *Customer) error
	List(ctx context.Context, offset, limit int) ([]Customer, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	SearchByName(ctx context.Context, name string) ([]Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Service — profile management
type Service interface {
	Create(ctx context.Context, c Customer) (*Customer, error)
	List(ctx context.Context, page, size int) (*Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	GetByEmail(ctx context.Context, email string) (*Customer, error)
	SearchByName(ctx context.Context, name string) ([]Customer, error)
	Update(ctx context.Context, id uuid.UUID, u Update) (*Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
