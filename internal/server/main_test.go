package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"
	"inkwell/internal/sitemap"
)

// setupTestServer builds a Server over an in-memory SQLite database with no
// Redis and no metrics registration, plus a Fiber app with routes mounted.
func setupTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Feedback{}))

	cfg := &config.Config{
		Port:        "8080",
		DBName:      "test",
		SiteBaseURL: "https://blog.example.com",
		Env:         "test",
	}

	cacheStore := cache.NewStore(nil)
	userRepo := repository.NewUserRepository(db, cacheStore)
	postRepo := repository.NewPostRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)

	srv := &Server{
		config:       cfg,
		db:           db,
		cache:        cacheStore,
		userRepo:     userRepo,
		postRepo:     postRepo,
		feedbackRepo: feedbackRepo,
		postService: service.NewPostService(
			postRepo, userRepo, cacheStore, sitemap.NewBuilder(cfg.SiteBaseURL)),
	}

	app := fiber.New()
	srv.SetupRoutes(app)

	return srv, app, db
}

// doJSON performs a JSON request against the test app and decodes the
// response body into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

// doJSONList is doJSON for endpoints returning a JSON array.
func doJSONList(t *testing.T, app *fiber.App, method, path string, headers map[string]string) (int, []map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded []map[string]any
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func registerUser(t *testing.T, app *fiber.App, name, email, password string) {
	t.Helper()
	status, _ := doJSON(t, app, http.MethodPost, "/api/register", map[string]any{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)
}
