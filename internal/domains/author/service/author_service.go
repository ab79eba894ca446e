package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/author"
	"bookstore-catalog/internal/shared/utils"
)

// authorService implements author.Service on top of the repository.
type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (*author.Author, error) {
	name := strings.TrimSpace(req.Name)

	// Duplicate check happens before anything is written.
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check author name: %w", err)
	}
	if existing != nil {
		return nil, author.ErrAuthorExists
	}

	slug, err := utils.GenerateUniqueSlug(ctx, s.repo.ExistsBySlug, name)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &author.Author{
		Name: name,
		Slug: slug,
	})
}

func (s *authorService) GetAll(ctx context.Context) ([]author.Author, error) {
	return s.repo.GetAll(ctx)
}

func (s *authorService) GetByID(ctx context.Context, id string) (*author.Author, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, author.ErrInvalidID
	}
	return s.repo.GetByID(ctx, uid)
}

// FindByIDs resolves raw ID strings to existing authors. Malformed IDs can
// never resolve, so they are skipped rather than erroring: callers compare
// the resolved count against the requested count.
func (s *authorService) FindByIDs(ctx context.Context, ids []string) ([]author.Author, error) {
	uids := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		uid, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		uids = append(uids, uid)
	}

	return s.repo.FindByIDs(ctx, uids)
}

func (s *authorService) Update(ctx context.Context, id string, req *author.UpdateAuthorRequest) (*author.Author, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, author.ErrInvalidID
	}

	existing, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	// Partial merge. The slug stays stable when the name changes so
	// published URLs keep working.
	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}

	return s.repo.Update(ctx, existing)
}

func (s *authorService) Delete(ctx context.Context, id string) (*author.Author, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, author.ErrInvalidID
	}

	removed, err := s.repo.Delete(ctx, uid)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, author.ErrAuthorNotFound
	}

	return removed, nil
}
