package feedback

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]Feedback, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id, text, date
		FROM customer_feedback
		WHERE customer_id = $1
		ORDER BY date DESC
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.CustomerID, &f.Text, &f.Date); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *repo) Create(ctx context.Context, f *Feedback) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customer_feedback (id, customer_id, text, date)
		VALUES ($1, $2, $3, $4)
	`, f.ID, f.CustomerID, f.Text, f.Date)
	return err
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*Feedback, error) {
	var f Feedback
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, text, date
		FROM customer_feedback
		WHERE id = $1
	`, id).Scan(&f.ID, &f.CustomerID, &f.Text, &f.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *repo) Update(ctx context.Context, f *Feedback) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE customer_feedback SET text = $2, date = $3 WHERE id = $1
	`, f.ID, f.Text, f.Date)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM customer_feedback WHERE id = $1`, id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return ErrNotFound
	}
	return err
}
