package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-catalog/internal/domains/book/model"
)

const bookColumns = `id, title, slug, saga, saga_number, description, authors, genres,
       published, rating, price, discount, discounted_price, cover, created_at, updated_at`

// postgresRepository implements Repository with raw SQL over pgxpool.
// The authors and genres columns are JSONB: each book row carries the
// resolved author/genre records copied in at write time.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Saga, &b.SagaNumber, &b.Description,
		&b.Authors, &b.Genres, &b.Published, &b.Rating, &b.Price,
		&b.Discount, &b.DiscountedPrice, &b.Cover, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) collectBooks(rows pgx.Rows) ([]model.Book, error) {
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		err := rows.Scan(
			&b.ID, &b.Title, &b.Slug, &b.Saga, &b.SagaNumber, &b.Description,
			&b.Authors, &b.Genres, &b.Published, &b.Rating, &b.Price,
			&b.Discount, &b.DiscountedPrice, &b.Cover, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}

	return books, rows.Err()
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, slug, saga, saga_number, description, authors, genres,
                           published, rating, price, discount, discounted_price, cover)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title, b.Slug, b.Saga, b.SagaNumber, b.Description, b.Authors, b.Genres,
		b.Published, b.Rating, b.Price, b.Discount, b.DiscountedPrice, b.Cover,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Unique index lost the check-then-act race on title or slug.
			return nil, model.ErrBookExists
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

// buildWhereClause assembles the list filters: genre and author match the
// slug of an embedded record, search is a case-insensitive title substring.
func buildWhereClause(filter model.BookFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.GenreSlug != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(genres) g WHERE g->>'slug' = $%d)", argIndex))
		args = append(args, filter.GenreSlug)
		argIndex++
	}

	if filter.AuthorSlug != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(authors) a WHERE a->>'slug' = $%d)", argIndex))
		args = append(args, filter.AuthorSlug)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", argIndex))
		args = append(args, filter.Search)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) List(ctx context.Context, filter model.BookFilter) ([]model.Book, int, error) {
	whereClause, args := buildWhereClause(filter)

	countQuery := "SELECT COUNT(*) FROM books " + whereClause
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM books %s ORDER BY %s LIMIT $%d OFFSET $%d",
		bookColumns, whereClause, model.SortClause(filter.Sort), len(args)+1, len(args)+2,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}

	books, err := r.collectBooks(rows)
	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE slug = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by slug: %w", err)
	}

	return b, nil
}

// FindByTitle returns nil without error when no book matches; used by the
// create pipeline's duplicate-title check.
func (r *postgresRepository) FindByTitle(ctx context.Context, title string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE title = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, title))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find book by title: %w", err)
	}

	return b, nil
}

func (r *postgresRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE slug = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book slug: %w", err)
	}
	return exists, nil
}

// Featured returns the top books ordered by a whitelisted field descending.
func (r *postgresRepository) Featured(ctx context.Context, field string, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM books ORDER BY %s DESC LIMIT $1",
		bookColumns, model.FeaturedField(field),
	)

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured books: %w", err)
	}

	return r.collectBooks(rows)
}

// Related finds books sharing at least one embedded author or genre with b,
// excluding b itself.
func (r *postgresRepository) Related(ctx context.Context, b *model.Book, limit int) ([]model.Book, error) {
	authorIDs := make([]string, len(b.Authors))
	for i, a := range b.Authors {
		authorIDs[i] = a.ID.String()
	}
	genreIDs := make([]string, len(b.Genres))
	for i, g := range b.Genres {
		genreIDs[i] = g.ID.String()
	}

	query := `
        SELECT ` + bookColumns + `
        FROM books
        WHERE id <> $1
          AND (
            EXISTS (SELECT 1 FROM jsonb_array_elements(authors) a WHERE a->>'id' = ANY($2::text[]))
            OR EXISTS (SELECT 1 FROM jsonb_array_elements(genres) g WHERE g->>'id' = ANY($3::text[]))
          )
        ORDER BY created_at DESC
        LIMIT $4`

	rows, err := r.pool.Query(ctx, query, b.ID, authorIDs, genreIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list related books: %w", err)
	}

	return r.collectBooks(rows)
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title = $2, saga = $3, saga_number = $4, description = $5,
            authors = $6, genres = $7, published = $8, rating = $9,
            price = $10, discount = $11, discounted_price = $12, cover = $13,
            updated_at = now()
        WHERE id = $1
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(ctx, query,
		b.ID, b.Title, b.Saga, b.SagaNumber, b.Description, b.Authors, b.Genres,
		b.Published, b.Rating, b.Price, b.Discount, b.DiscountedPrice, b.Cover,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrBookExists
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

// Delete removes the book and returns the removed record, nil when absent.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `DELETE FROM books WHERE id = $1 RETURNING ` + bookColumns

	removed, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}

	return removed, nil
}
