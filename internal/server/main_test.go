package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"beulynk/internal/config"
	"beulynk/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a Server backed by a fresh in-memory SQLite database.
// Each call gets its own named shared-cache database so tests stay isolated
// while GORM's pool can open multiple connections to it.
func newTestServer(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		Port:   "8000",
		DBName: "test",
		Env:    "test",
	}

	srv := NewServerWithDeps(cfg, db, nil)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	srv.SetupRoutes(app)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return app, srv
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doJSONWithScheme requests the profile endpoint using an explicit
// Authorization scheme.
func doJSONWithScheme(t *testing.T, app *fiber.App, scheme, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", scheme+" "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody unmarshals a response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "body: %s", string(data))
	return out
}

// decodeList unmarshals a response body into a slice of maps.
func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out), "body: %s", string(data))
	return out
}

// registerUser registers a user through the API and returns the issued token.
func registerUser(t *testing.T, app *fiber.App, username, role string) string {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/register", map[string]any{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "secret123",
		"confirm_password": "secret123",
		"first_name":       "Test",
		"last_name":        "User",
		"role":             role,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
