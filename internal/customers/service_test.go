package customers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	created  *Customer
	updated  *Customer
	existing *Customer
	items    []Customer
	total    int

	createErr error
	getErr    error
}

func (m *mockRepo) Create(_ context.Context, c *Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = c
	return nil
}

func (m *mockRepo) List(_ context.Context, _, _ int) ([]Customer, int, error) {
	return m.items, m.total, nil
}

func (m *mockRepo) GetByID(_ context.Context, _ uuid.UUID) (*Customer, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	cp := *m.existing
	return &cp, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, _ string) (*Customer, error) {
	return m.existing, m.getErr
}

func (m *mockRepo) SearchByName(_ context.Context, _ string) ([]Customer, error) {
	return m.items, nil
}

func (m *mockRepo) Update(_ context.Context, c *Customer) error {
	m.updated = c
	return nil
}

func (m *mockRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (m *mockRepo) Exists(_ context.Context, _ uuid.UUID) (bool, error) {
	return m.existing != nil, nil
}

func TestCreateFillsDefaults(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), Customer{
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario@example.com",
		Phone:     "+1 555 867 5309",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)
	require.Equal(t, "defaultPass123", created.Password)

	// mariorossi_<last four phone chars>_<5 random chars>
	require.True(t, strings.HasPrefix(created.Username, "mariorossi_5309_"))
	parts := strings.Split(created.Username, "_")
	require.Len(t, parts, 3)
	require.Len(t, parts[2], 5)

	require.Same(t, created, repo.created)
}

func TestCreateKeepsSuppliedValues(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	id := uuid.New()
	created, err := svc.Create(context.Background(), Customer{
		ID:        id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "123",
		Username:  "ada",
		Password:  "s3cret",
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)
	require.Equal(t, "ada", created.Username)
	require.Equal(t, "s3cret", created.Password)
}

func TestCreatePropagatesConflict(t *testing.T) {
	svc := NewService(&mockRepo{createErr: ErrConflict})

	_, err := svc.Create(context.Background(), Customer{FirstName: "A", LastName: "B", Email: "a@b.c", Phone: "1"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestListClampsPaging(t *testing.T) {
	repo := &mockRepo{items: make([]Customer, 20), total: 45}
	svc := NewService(repo)

	page, err := svc.List(context.Background(), -3, 0)
	require.NoError(t, err)
	require.Equal(t, 0, page.Number)
	require.Equal(t, 20, page.Size)
	require.Equal(t, 45, page.TotalElements)
	require.Equal(t, 3, page.TotalPages)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := &mockRepo{existing: &Customer{
		ID:        uuid.New(),
		FirstName: "Mario",
		LastName:  "Rossi",
		Email:     "mario@example.com",
		Phone:     "555",
		Password:  "original",
		City:      "Naples",
	}}
	svc := NewService(repo)

	city := "Rome"
	blank := "   "
	updated, err := svc.Update(context.Background(), repo.existing.ID, Update{
		City:     &city,
		Password: &blank, // blank password must not overwrite
	})
	require.NoError(t, err)
	require.Equal(t, "Rome", updated.City)
	require.Equal(t, "Mario", updated.FirstName)
	require.Equal(t, "original", updated.Password)
	require.Same(t, updated, repo.updated)
}

func TestUpdateMissingCustomer(t *testing.T) {
	svc := NewService(&mockRepo{getErr: ErrNotFound})

	_, err := svc.Update(context.Background(), uuid.New(), Update{})
	require.ErrorIs(t, err, ErrNotFound)
}
