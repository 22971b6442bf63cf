package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"presence_board/database"
	"presence_board/model"
	"presence_board/router"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// setupApp wires the routes against a per-test in-memory database.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.DB = db
	database.Migrate(db)

	app := fiber.New()
	router.SetupRoutes(app)
	return app
}

func request(t *testing.T, app *fiber.App, method, path string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp.StatusCode, env
}

func createDashboard(t *testing.T, app *fiber.App, name string) uint {
	t.Helper()

	status, env := request(t, app, fiber.MethodPost, "/api/dashboards", fiber.Map{"dashboard_name": name})
	require.Equal(t, fiber.StatusCreated, status)

	var dashboard model.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))
	return dashboard.ID
}

func createUser(t *testing.T, app *fiber.App, dashboardId uint, fields fiber.Map) uint {
	t.Helper()

	status, env := request(t, app, fiber.MethodPost, fmt.Sprintf("/api/dashboards/%d/users", dashboardId), fields)
	require.Equal(t, fiber.StatusCreated, status)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	return created.ID
}

func getUser(t *testing.T, app *fiber.App, userId uint) model.User {
	t.Helper()

	status, env := request(t, app, fiber.MethodGet, fmt.Sprintf("/api/users/%d", userId), nil)
	require.Equal(t, fiber.StatusOK, status)

	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user
}
