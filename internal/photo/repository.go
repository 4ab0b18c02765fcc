package photo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository handles all photo database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a metadata record for an already-uploaded object and returns
// it with its assigned id. storageKey must come from a successful ingestion.
func (r *Repository) Create(ctx context.Context, storageKey string, title, description *string) (*Photo, error) {
	p := &Photo{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO photos (storage_key, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, storage_key, title, description`,
		storageKey, title, description,
	).Scan(&p.ID, &p.StorageKey, &p.Title, &p.Description)
	if err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return p, nil
}

// ListAll fetches every photo record. Rows come back ordered by id, but
// callers must not depend on any particular ordering.
func (r *Repository) ListAll(ctx context.Context) ([]Photo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, storage_key, title, description FROM photos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	var photos []Photo
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.StorageKey, &p.Title, &p.Description); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}
