package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/domains/book/model"
	"bookstore-catalog/internal/domains/book/repository"
	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared/response"
	"bookstore-catalog/internal/shared/utils"
)

// bookService implements the book pipeline. The author and genre services
// are constructor-passed collaborators used for reference validation.
type bookService struct {
	repo    repository.Repository
	authors AuthorResolver
	genres  GenreResolver
}

func NewBookService(repo repository.Repository, authors AuthorResolver, genres GenreResolver) Service {
	return &bookService{
		repo:    repo,
		authors: authors,
		genres:  genres,
	}
}

// dedupe drops repeated IDs so that requesting the same reference twice
// cannot skew the resolved-vs-requested count comparison.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	return distinct
}

// resolveAuthors validates that every requested author ID resolves to an
// existing record. Partial matches reject the whole set.
func (s *bookService) resolveAuthors(ctx context.Context, ids []string) ([]author.Author, error) {
	distinct := dedupe(ids)

	resolved, err := s.authors.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve authors: %w", err)
	}
	if len(resolved) != len(distinct) {
		return nil, model.ErrInvalidAuthorRefs
	}
	return resolved, nil
}

func (s *bookService) resolveGenres(ctx context.Context, ids []string) ([]genre.Genre, error) {
	distinct := dedupe(ids)

	resolved, err := s.genres.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}
	if len(resolved) != len(distinct) {
		return nil, model.ErrInvalidGenreRefs
	}
	return resolved, nil
}

// Create runs the ordered create pipeline: duplicate-title check, reference
// resolution (authors before genres), unique slug, derived price, persist.
// Each phase short-circuits on failure so nothing is written.
func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	title := strings.TrimSpace(req.Title)

	existing, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to check book title: %w", err)
	}
	if existing != nil {
		return nil, model.ErrBookExists
	}

	authors, err := s.resolveAuthors(ctx, req.Authors)
	if err != nil {
		return nil, err
	}
	genres, err := s.resolveGenres(ctx, req.Genres)
	if err != nil {
		return nil, err
	}

	slug, err := utils.GenerateUniqueSlug(ctx, s.repo.ExistsBySlug, title)
	if err != nil {
		return nil, err
	}

	b := &model.Book{
		Title:       title,
		Slug:        slug,
		Saga:        req.Saga,
		SagaNumber:  req.SagaNumber,
		Description: req.Description,
		Authors:     authors,
		Genres:      genres,
		Published:   req.Published,
		Rating:      req.Rating,
		Price:       req.Price,
		Discount:    req.Discount,
		Cover:       req.Cover,
	}
	if req.Discount > 0 {
		dp := utils.DiscountedPrice(req.Price, req.Discount)
		b.DiscountedPrice = &dp
	}

	return s.repo.Create(ctx, b)
}

func (s *bookService) List(ctx context.Context, q model.ListBooksQuery) ([]model.Book, *response.Pagination, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}

	filter := model.BookFilter{
		GenreSlug:  q.Genre,
		AuthorSlug: q.Author,
		Search:     q.Search,
		Sort:       q.Sort,
		Limit:      model.PageSize,
		Offset:     (page - 1) * model.PageSize,
	}

	books, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	pagination := &response.Pagination{
		Page:       page,
		PageSize:   model.PageSize,
		TotalItems: total,
		TotalPages: (total + model.PageSize - 1) / model.PageSize,
	}

	return books, pagination, nil
}

func (s *bookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *bookService) GetBySlug(ctx context.Context, slug string) (*model.Book, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *bookService) Featured(ctx context.Context, field string) ([]model.Book, error) {
	return s.repo.Featured(ctx, field, model.FeaturedLimit)
}

func (s *bookService) Related(ctx context.Context, slug string) ([]model.Book, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.Related(ctx, b, model.RelatedLimit)
}

// Update runs the ordered update pipeline: id validation, fetch, shallow
// merge, derived-price recomputation, reference re-resolution, persist.
func (s *bookService) Update(ctx context.Context, id string, req model.UpdateBookRequest) (*model.Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrInvalidBookID
	}

	b, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	// Shallow merge of the provided fields. The slug stays stable on
	// title changes so published URLs keep working.
	if req.Title != nil {
		b.Title = strings.TrimSpace(*req.Title)
	}
	if req.Saga != nil {
		b.Saga = req.Saga
	}
	if req.SagaNumber != nil {
		b.SagaNumber = req.SagaNumber
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Published != nil {
		b.Published = *req.Published
	}
	if req.Rating != nil {
		b.Rating = *req.Rating
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.Discount != nil {
		b.Discount = *req.Discount
	}
	if req.Cover != nil {
		b.Cover = *req.Cover
	}

	// Keep discountedPrice consistent with the merged price and discount.
	// A payload that omits price recomputes against the stored one.
	if req.Price != nil || req.Discount != nil {
		if b.Discount > 0 {
			dp := utils.DiscountedPrice(b.Price, b.Discount)
			b.DiscountedPrice = &dp
		} else {
			b.DiscountedPrice = nil
		}
	}

	if req.Authors != nil {
		authors, err := s.resolveAuthors(ctx, req.Authors)
		if err != nil {
			return nil, err
		}
		b.Authors = authors
	}
	if req.Genres != nil {
		genres, err := s.resolveGenres(ctx, req.Genres)
		if err != nil {
			return nil, err
		}
		b.Genres = genres
	}

	return s.repo.Update(ctx, b)
}

func (s *bookService) Delete(ctx context.Context, id string) (*model.Book, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, model.ErrInvalidBookID
	}

	removed, err := s.repo.Delete(ctx, uid)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, model.ErrBookNotFound
	}

	return removed, nil
}
