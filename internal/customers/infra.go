package customers

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const customerColumns = `
	id, first_name, last_name, email, phone, username, password,
	COALESCE(to_char(dob, 'YYYY-MM-DD'), ''), COALESCE(gender, ''),
	COALESCE(address, ''), COALESCE(postal_code, ''), COALESCE(country, ''),
	COALESCE(state, ''), COALESCE(city, ''), interests, newsletter, terms`

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, c *Customer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (
			id, first_name, last_name, email, phone, username, password,
			dob, gender, address, postal_code, country, state, city,
			interests, newsletter, terms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::date, NULLIF($9, ''),
			NULLIF($10, ''), NULLIF($11, ''), NULLIF($12, ''), NULLIF($13, ''),
			NULLIF($14, ''), $15, $16, $17)
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Username,
		c.Password,
		c.DOB,
		c.Gender,
		c.Address,
		c.PostalCode,
		c.Country,
		c.State,
		c.City,
		pq.Array(c.Interests),
		c.Newsletter,
		c.Terms,
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	return err
}

func (r *repo) List(ctx context.Context, offset, limit int) ([]Customer, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM customers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanCustomers(rows)
	return out, total, err
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE id = $1
	`, id)
	return scanCustomer(row)
}

func (r *repo) GetByEmail(ctx context.Context, email string) (*Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE lower(email) = lower($1)
	`, email)
	return scanCustomer(row)
}

func (r *repo) SearchByName(ctx context.Context, name string) ([]Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+customerColumns+`
		FROM customers
		WHERE lower(first_name || ' ' || last_name) LIKE '%' || lower($1) || '%'
		ORDER BY last_name, first_name
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func (r *repo) Update(ctx context.Context, c *Customer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers SET
			first_name = $2, last_name = $3, email = $4, phone = $5,
			password = $6, dob = NULLIF($7, '')::date, gender = NULLIF($8, ''),
			address = NULLIF($9, ''), postal_code = NULLIF($10, ''),
			country = NULLIF($11, ''), state = NULLIF($12, ''),
			city = NULLIF($13, ''), interests = $14, newsletter = $15, terms = $16
		WHERE id = $1
	`,
		c.ID,
		c.FirstName,
		c.LastName,
		c.Email,
		c.Phone,
		c.Password,
		c.DOB,
		c.Gender,
		c.Address,
		c.PostalCode,
		c.Country,
		c.State,
		c.City,
		pq.Array(c.Interests),
		c.Newsletter,
		c.Terms,
	)
	if isUniqueViolation(err) {
		return ErrConflict
	}
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}

func (r *repo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*Customer, error) {
	var c Customer
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Username,
		&c.Password,
		&c.DOB,
		&c.Gender,
		&c.Address,
		&c.PostalCode,
		&c.Country,
		&c.State,
		&c.City,
		pq.Array(&c.Interests),
		&c.Newsletter,
		&c.Terms,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCustomers(rows *sql.Rows) ([]Customer, error) {
	var out []Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
