package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/genre"
)

// isUniqueViolation reports whether err is a unique-constraint violation.
// The name and slug constraints both mean the genre already exists.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

const genreColumns = "id, name, image, slug, created_at, updated_at"

// postgresRepository implements genre.Repository with raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) genre.Repository {
	return &postgresRepository{pool: pool}
}

func scanGenre(row pgx.Row) (*genre.Genre, error) {
	var g genre.Genre
	err := row.Scan(&g.ID, &g.Name, &g.Image, &g.Slug, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepository) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        INSERT INTO genres (name, image, slug)
        VALUES ($1, $2, $3)
        RETURNING ` + genreColumns

	created, err := scanGenre(r.pool.QueryRow(ctx, query, g.Name, g.Image, g.Slug))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, genre.ErrGenreExists
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]genre.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := make([]genre.Genre, 0)
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.Slug, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`

	g, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}

	return g, nil
}

func (r *postgresRepository) FindByName(ctx context.Context, name string) (*genre.Genre, error) {
	query := `SELECT ` + genreColumns + ` FROM genres WHERE name = $1`

	g, err := scanGenre(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find genre by name: %w", err)
	}

	return g, nil
}

func (r *postgresRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]genre.Genre, error) {
	if len(ids) == 0 {
		return []genre.Genre{}, nil
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query := `SELECT ` + genreColumns + ` FROM genres WHERE id = ANY($1::uuid[])`

	rows, err := r.pool.Query(ctx, query, idStrings)
	if err != nil {
		return nil, fmt.Errorf("failed to find genres by ids: %w", err)
	}
	defer rows.Close()

	genres := make([]genre.Genre, 0, len(ids))
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.Slug, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}

	return genres, rows.Err()
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM genres WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check genre slug: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	query := `
        UPDATE genres
        SET name = $2, image = $3, slug = $4, updated_at = now()
        WHERE id = $1
        RETURNING ` + genreColumns

	updated, err := scanGenre(r.pool.QueryRow(ctx, query, g.ID, g.Name, g.Image, g.Slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, genre.ErrGenreNotFound
		}
		if isUniqueViolation(err) {
			return nil, genre.ErrGenreExists
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}

	return updated, nil
}

// Delete removes the genre and returns the removed record, nil when absent.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	query := `DELETE FROM genres WHERE id = $1 RETURNING ` + genreColumns

	removed, err := scanGenre(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete genre: %w", err)
	}

	return removed, nil
}
