package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-catalog/internal/domains/author"
)

type fakeAuthorRepo struct {
	authors map[uuid.UUID]*author.Author
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{authors: make(map[uuid.UUID]*author.Author)}
}

func (f *fakeAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	stored := *a
	stored.ID = uuid.New()
	f.authors[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	all := make([]author.Author, 0, len(f.authors))
	for _, a := range f.authors {
		all = append(all, *a)
	}
	return all, nil
}

func (f *fakeAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAuthorRepo) FindByName(_ context.Context, name string) (*author.Author, error) {
	for _, a := range f.authors {
		if a.Name == name {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthorRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]author.Author, error) {
	found := make([]author.Author, 0, len(ids))
	for _, id := range ids {
		if a, ok := f.authors[id]; ok {
			found = append(found, *a)
		}
	}
	return found, nil
}

func (f *fakeAuthorRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	for _, a := range f.authors {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	if _, ok := f.authors[a.ID]; !ok {
		return nil, author.ErrAuthorNotFound
	}
	stored := *a
	f.authors[a.ID] = &stored
	return &stored, nil
}

func (f *fakeAuthorRepo) Delete(_ context.Context, id uuid.UUID) (*author.Author, error) {
	a, ok := f.authors[id]
	if !ok {
		return nil, nil
	}
	delete(f.authors, id)
	return a, nil
}

func TestAuthorServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("slugifies the name", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		a, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Gabriel García Márquez"})
		require.NoError(t, err)
		assert.Equal(t, "Gabriel García Márquez", a.Name)
		assert.Equal(t, "gabriel-garcia-marquez", a.Slug)
	})

	t.Run("trims the name before the duplicate check", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo)

		_, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Ursula K. Le Guin"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, &author.CreateAuthorRequest{Name: "  Ursula K. Le Guin "})
		assert.ErrorIs(t, err, author.ErrAuthorExists)
		assert.Len(t, repo.authors, 1)
	})

	t.Run("suffixes the slug on collision", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		first, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "J.R.R. Tolkien"})
		require.NoError(t, err)

		second, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "J R R Tolkien"})
		require.NoError(t, err)

		assert.NotEqual(t, first.Slug, second.Slug)
		assert.True(t, strings.HasPrefix(second.Slug, first.Slug+"-"))
	})
}

func TestAuthorServiceFindByIDs(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAuthorRepo()
	svc := NewAuthorService(repo)

	a, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Octavia Butler"})
	require.NoError(t, err)

	t.Run("resolves known ids", func(t *testing.T) {
		found, err := svc.FindByIDs(ctx, []string{a.ID.String()})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("skips malformed and unknown ids", func(t *testing.T) {
		found, err := svc.FindByIDs(ctx, []string{"not-a-uuid", uuid.NewString(), a.ID.String()})
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}

func TestAuthorServiceUpdate(t *testing.T) {
	ctx := context.Background()

	name := func(s string) *string { return &s }

	t.Run("malformed id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())
		_, err := svc.Update(ctx, "nope", &author.UpdateAuthorRequest{Name: name("X")})
		assert.ErrorIs(t, err, author.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())
		_, err := svc.Update(ctx, uuid.NewString(), &author.UpdateAuthorRequest{Name: name("X")})
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("renames while keeping the slug", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())

		created, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "Robin Hobb"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID.String(), &author.UpdateAuthorRequest{Name: name("Megan Lindholm")})
		require.NoError(t, err)
		assert.Equal(t, "Megan Lindholm", updated.Name)
		assert.Equal(t, created.Slug, updated.Slug)
	})
}

func TestAuthorServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())
		_, err := svc.Delete(ctx, "nope")
		assert.ErrorIs(t, err, author.ErrInvalidID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewAuthorService(newFakeAuthorRepo())
		_, err := svc.Delete(ctx, uuid.NewString())
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)
	})

	t.Run("returns the removed record", func(t *testing.T) {
		repo := newFakeAuthorRepo()
		svc := NewAuthorService(repo)

		created, err := svc.Create(ctx, &author.CreateAuthorRequest{Name: "N.K. Jemisin"})
		require.NoError(t, err)

		removed, err := svc.Delete(ctx, created.ID.String())
		require.NoError(t, err)
		assert.Equal(t, created.ID, removed.ID)
		assert.Empty(t, repo.authors)
	})
}
