package server

import (
	"time"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts. The author name is resolved to a user
// reference when it matches a registered username, and stored verbatim
// otherwise. The response is a bare confirmation; the new post's id is not
// returned.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title       string            `json:"title"`
		Content     string            `json:"content"`
		Author      string            `json:"author"`
		Category    string            `json:"category"`
		Thumbnail   string            `json:"thumbnail"`
		Images      models.StringList `json:"images"`
		Keywords    string            `json:"keywords"`
		Subtitle    string            `json:"subtitle"`
		AuthorGmail string            `json:"authorGmail"`
		CreatedAt   time.Time         `json:"createdAt"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Content == "" || req.Author == "" || req.Category == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title, content, author, and category are required"))
	}

	post := &models.Post{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		Thumbnail:   req.Thumbnail,
		Images:      req.Images,
		Keywords:    req.Keywords,
		Subtitle:    req.Subtitle,
		AuthorGmail: req.AuthorGmail,
		CreatedAt:   req.CreatedAt,
	}

	if err := s.postService.Create(c.Context(), post, req.Author); err != nil {
		return respondAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
	})
}

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(posts)
}

// UpdatePost handles PUT /api/posts/:id. The request body is overlaid onto
// the stored post: fields present in the body overwrite, everything else is
// untouched. The author field passes through without re-resolution.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}

	if parseErr := c.BodyParser(post); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	// The overlay may carry an id; the path parameter stays authoritative.
	post.ID = postID

	if err := s.postService.Update(c.Context(), post); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), postID); err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}

// Sitemap handles GET /sitemap.xml
func (s *Server) Sitemap(c *fiber.Ctx) error {
	doc, err := s.postService.SitemapXML(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/xml")
	return c.SendString(doc)
}
