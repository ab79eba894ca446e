package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"bookstore-catalog/internal/domains/genre"
	"bookstore-catalog/internal/shared/utils"
)

// genreService implements genre.Service on top of the repository.
type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req *genre.CreateGenreRequest) (*genre.Genre, error) {
	name := strings.TrimSpace(req.Name)

	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre name: %w", err)
	}
	if existing != nil {
		return nil, genre.ErrGenreExists
	}

	slug, err := utils.GenerateUniqueSlug(ctx, s.repo.ExistsBySlug, name)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &genre.Genre{
		Name:  name,
		Image: req.Image,
		Slug:  slug,
	})
}

func (s *genreService) GetAll(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) GetByID(ctx context.Context, id string) (*genre.Genre, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, genre.ErrInvalidID
	}
	return s.repo.GetByID(ctx, uid)
}

// FindByIDs resolves raw ID strings to existing genres; malformed IDs are
// skipped the same way unknown ones simply fail to resolve.
func (s *genreService) FindByIDs(ctx context.Context, ids []string) ([]genre.Genre, error) {
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

func (s *genreService) Update(ctx context.Context, id string, req *genre.UpdateGenreRequest) (*genre.Genre, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, genre.ErrInvalidID
	}

	existing, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		existing.Name = strings.TrimSpace(*req.Name)
	}
	if req.Image != nil {
		existing.Image = *req.Image
	}

	return s.repo.Update(ctx, existing)
}

func (s *genreService) Delete(ctx context.Context, id string) (*genre.Genre, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, genre.ErrInvalidID
	}

	removed, err := s.repo.Delete(ctx, uid)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, genre.ErrGenreNotFound
	}

	return removed, nil
}
