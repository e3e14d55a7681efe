package events

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for events.
type Repository interface {
	Create(ctx context.Context, event *Event) (*Event, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// Create inserts a new event and returns it with its assigned identifier.
func (r *PGRepository) Create(ctx context.Context, event *Event) (*Event, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO events (name, description, source, destination, owner_email, purpose, start_date, end_date, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		event.Name, event.Description, event.Source, event.Destination,
		event.OwnerEmail, event.Purpose, event.StartDate, event.EndDate, event.Status)

	created := *event
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

var _ Repository = (*PGRepository)(nil)
