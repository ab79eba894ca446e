package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/author"
)

// isUniqueViolation reports whether err is a unique-constraint violation.
// Both the name and slug constraints mean the author effectively already
// exists, so callers map either to the same error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const authorColumns = "id, name, slug, created_at, updated_at"

// postgresRepository implements author.Repository with raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

func scanAuthor(row pgx.Row) (*author.Author, error) {
	var a author.Author
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, slug)
        VALUES ($1, $2)
        RETURNING ` + authorColumns

	created, err := scanAuthor(r.pool.QueryRow(ctx, query, a.Name, a.Slug))
	if err != nil {
		// A unique index lost the check-then-act race; same outcome as
		// the upfront duplicate check.
		if isUniqueViolation(err) {
			return nil, author.ErrAuthorExists
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0)
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return a, nil
}

// FindByName returns nil without error when no author matches; callers use
// it for duplicate-prevention, not lookups.
func (r *postgresRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE name = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find author by name: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]author.Author, error) {
	if len(ids) == 0 {
		return []author.Author{}, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = ANY($1::uuid[])`

	rows, err := r.pool.Query(ctx, query, idStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to find authors by ids: %w", err)
	}
	defer rows.Close()

	authors := make([]author.Author, 0, len(ids))
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	return authors, rows.Err()
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM authors WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check author slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $2, slug = $3, updated_at = now()
        WHERE id = $1
        RETURNING ` + authorColumns

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query, a.ID, a.Name, a.Slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		if isUniqueViolation(err) {
			return nil, author.ErrAuthorExists
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	return updated, nil
}

// Delete removes the author and returns the removed record, nil when absent.
// No cascade: books keep their embedded copy of the author.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	query := `DELETE FROM authors WHERE id = $1 RETURNING ` + authorColumns

	removed, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete author: %w", err)
	}

	return removed, nil
}
