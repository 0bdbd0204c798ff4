package repository

import (
	"context"
	"errors"

	"github.com/fennwick/practice-journal/internal/errs"
	"github.com/fennwick/practice-journal/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InstrumentsRepository reads the instruments table.
type InstrumentsRepository struct {
	pool *pgxpool.Pool
}

func NewInstrumentsRepository(pool *pgxpool.Pool) *InstrumentsRepository {
	return &InstrumentsRepository{pool: pool}
}

// List returns all instruments in insertion order.
func (r *InstrumentsRepository) List(ctx context.Context) ([]model.Instrument, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at
		FROM instruments
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	instruments := []model.Instrument{}
	for rows.Next() {
		var in model.Instrument
		if err := rows.Scan(&in.ID, &in.Name, &in.Description, &in.CreatedAt); err != nil {
			return nil, err
		}
		instruments = append(instruments, in)
	}
	return instruments, rows.Err()
}

// GetByID returns a single instrument or a 404 error when absent.
func (r *InstrumentsRepository) GetByID(ctx context.Context, id int64) (*model.Instrument, error) {
	var in model.Instrument
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, created_at
		FROM instruments
		WHERE id = $1`, id).
		Scan(&in.ID, &in.Name, &in.Description, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError("Instrument not found", true, nil)
		}
		return nil, err
	}
	return &in, nil
}
