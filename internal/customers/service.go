package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultPassword = "defaultPass123"

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, c Customer) (*Customer, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if strings.TrimSpace(c.Password) == "" {
		c.Password = defaultPassword
	}
	if strings.TrimSpace(c.Username) == "" {
		c.Username = generateUsername(c.FirstName, c.LastName, c.Phone)
	}

	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	log.Info().Str("customer", c.ID.String()).Str("username", c.Username).Msg("customer created")
	return &c, nil
}

func (s *service) List(ctx context.Context, page, size int) (*Page, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}

	items, total, err := s.repo.List(ctx, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	if items == nil {
		items = []Customer{}
	}

	totalPages := total / size
	if total%size != 0 {
		totalPages++
	}

	return &Page{
		Content:       items,
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        page,
		Size:          size,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *service) SearchByName(ctx context.Context, name string) ([]Customer, error) {
	return s.repo.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *service) Update(ctx context.Context, id uuid.UUID, u Update) (*Customer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(existing, u)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	log.Info().Str("customer", id.String()).Msg("customer updated")
	return existing, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	log.Info().Str("customer", id.String()).Msg("customer deleted")
	return nil
}

func applyUpdate(c *Customer, u Update) {
	if u.FirstName != nil {
		c.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		c.LastName = *u.LastName
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Phone != nil {
		c.Phone = *u.Phone
	}
	if u.DOB != nil {
		c.DOB = *u.DOB
	}
	if u.Gender != nil {
		c.Gender = *u.Gender
	}
	if u.Address != nil {
		c.Address = *u.Address
	}
	if u.PostalCode != nil {
		c.PostalCode = *u.PostalCode
	}
	if u.Country != nil {
		c.Country = *u.Country
	}
	if u.State != nil {
		c.State = *u.State
	}
	if u.City != nil {
		c.City = *u.City
	}
	if u.Interests != nil {
		c.Interests = *u.Interests
	}
	if u.Newsletter != nil {
		c.Newsletter = *u.Newsletter
	}
	if u.Terms != nil {
		c.Terms = *u.Terms
	}
	// Blank passwords never overwrite the stored one.
	if u.Password != nil && strings.TrimSpace(*u.Password) != "" {
		c.Password = *u.Password
	}
}

// generateUsername builds a stable-enough handle when none was supplied:
// lowercased name, last four phone digits, short random suffix.
func generateUsername(first, last, phone string) string {
	base := strings.ToLower(strings.ReplaceAll(first+last, " ", ""))

	suffix := fmt.Sprintf("%04d", time.Now().UnixMilli()%10000)
	if len(phone) >= 4 {
		suffix = phone[len(phone)-4:]
	}

	return base + "_" + suffix + "_" + uuid.NewString()[:5]
}
