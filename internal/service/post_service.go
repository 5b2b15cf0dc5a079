// Package service contains domain logic layered between handlers and repositories.
package service

import (
	"context"
	"log/slog"
	"time"

	"inkwell/internal/cache"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/sitemap"
)

// PostService owns post mutations, author identity resolution, and the
// sitemap refresh that follows every mutation.
type PostService struct {
	posts   repository.PostRepository
	users   repository.UserRepository
	cache   *cache.Store
	builder *sitemap.Builder
}

// NewPostService returns a PostService wired to the given collaborators.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, cacheStore *cache.Store, builder *sitemap.Builder) *PostService {
	if cacheStore == nil {
		cacheStore = cache.NewStore(nil)
	}
	return &PostService{
		posts:   posts,
		users:   users,
		cache:   cacheStore,
		builder: builder,
	}
}

// ResolveAuthor resolves a caller-supplied author name to a user reference
// when a user with that exact username exists, and to the raw string
// otherwise. A miss is an expected outcome, not an error: guest authors are
// a deliberate leniency, not a security boundary.
func (s *PostService) ResolveAuthor(ctx context.Context, name string) models.Author {
	user, err := s.users.GetByUsername(ctx, name)
	if err != nil || user == nil {
		return models.GuestAuthor(name)
	}
	return models.UserRef(user.ID)
}

// Create resolves the author, applies timestamp defaults, and persists the
// post. createdAt supplied by the caller is honored; updatedAt is stamped
// once here and never auto-refreshed afterwards.
func (s *PostService) Create(ctx context.Context, post *models.Post, authorName string) error {
	post.Author = s.ResolveAuthor(ctx, authorName)

	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = now

	if err := s.posts.Create(ctx, post); err != nil {
		return err
	}

	s.refreshSitemapAsync()
	return nil
}

// Update writes the already-overlaid post document back. The author field
// passes through whatever the caller supplied; it is never re-resolved.
func (s *PostService) Update(ctx context.Context, post *models.Post) error {
	if err := s.posts.Save(ctx, post); err != nil {
		return err
	}

	s.refreshSitemapAsync()
	return nil
}

// Delete removes the post by id.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.refreshSitemapAsync()
	return nil
}

// SitemapXML returns the rendered sitemap, serving the cached document when
// present and rebuilding from the store otherwise.
func (s *PostService) SitemapXML(ctx context.Context) (string, error) {
	if doc, found, err := s.cache.GetString(ctx, cache.SitemapKey); err == nil && found {
		return doc, nil
	}
	return s.buildAndCacheSitemap(ctx)
}

func (s *PostService) buildAndCacheSitemap(ctx context.Context) (string, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return "", err
	}
	doc, err := s.builder.Build(posts)
	if err != nil {
		return "", models.NewInternalError(err)
	}
	_ = s.cache.SetString(ctx, cache.SitemapKey, doc, cache.SitemapTTL)
	return doc, nil
}

// refreshSitemapAsync rebuilds the cached sitemap in the background.
// Failures are logged and never surface to the triggering mutation.
func (s *PostService) refreshSitemapAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := s.buildAndCacheSitemap(ctx); err != nil {
			middleware.Logger.Warn("sitemap refresh failed",
				slog.String("error", err.Error()))
		}
	}()
}
