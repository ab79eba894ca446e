package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"bookstore-catalog/internal/config"
	"bookstore-catalog/internal/infrastructure/database"

	"bookstore-catalog/internal/domains/author"
	authorHandler "bookstore-catalog/internal/domains/author/handler"
	authorRepo "bookstore-catalog/internal/domains/author/repository"
	authorService "bookstore-catalog/internal/domains/author/service"

	"bookstore-catalog/internal/domains/genre"
	genreHandler "bookstore-catalog/internal/domains/genre/handler"
	genreRepo "bookstore-catalog/internal/domains/genre/repository"
	genreService "bookstore-catalog/internal/domains/genre/service"

	bookHandler "bookstore-catalog/internal/domains/book/handler"
	bookRepo "bookstore-catalog/internal/domains/book/repository"
	bookService "bookstore-catalog/internal/domains/book/service"
)

// Container is the root of the dependency graph. Everything is wired
// explicitly, constructors only: config -> infrastructure -> repositories
// -> services -> handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB

	AuthorService author.Service
	GenreService  genre.Service
	BookService   bookService.Service

	AuthorHandler *authorHandler.AuthorHandler
	GenreHandler  *genreHandler.GenreHandler
	BookHandler   *bookHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	c.DB = db

	// Repositories
	authors := authorRepo.NewPostgresRepository(db.Pool)
	genres := genreRepo.NewPostgresRepository(db.Pool)
	books := bookRepo.NewPostgresRepository(db.Pool)

	// Services. The book pipeline gets the author and genre services as
	// collaborators for reference validation.
	c.AuthorService = authorService.NewAuthorService(authors)
	c.GenreService = genreService.NewGenreService(genres)
	c.BookService = bookService.NewBookService(books, c.AuthorService, c.GenreService)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Info().Msg("Container initialized")
	return c, nil
}

// Cleanup releases the container's resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
}
