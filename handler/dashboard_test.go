package handler_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"presence_board/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestCreateDashboardTrimsName(t *testing.T) {
	app := setupApp(t)

	status, env := request(t, app, fiber.MethodPost, "/api/dashboards", fiber.Map{"dashboard_name": "  Team A  "})
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)

	var dashboard model.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))
	require.Equal(t, "Team A", dashboard.DashboardName)
	require.NotZero(t, dashboard.ID)
}

func TestCreateDashboardRejectsBlankName(t *testing.T) {
	app := setupApp(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		status, env := request(t, app, fiber.MethodPost, "/api/dashboards", fiber.Map{"dashboard_name": name})
		require.Equal(t, fiber.StatusBadRequest, status)
		require.False(t, env.Success)
		require.NotEmpty(t, env.Error)
	}
}

func TestListDashboardsOrderedById(t *testing.T) {
	app := setupApp(t)

	first := createDashboard(t, app, "Floor 1")
	second := createDashboard(t, app, "Floor 2")

	status, env := request(t, app, fiber.MethodGet, "/api/dashboards", nil)
	require.Equal(t, fiber.StatusOK, status)

	var dashboards []model.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &dashboards))
	require.Len(t, dashboards, 2)
	require.Equal(t, first, dashboards[0].ID)
	require.Equal(t, second, dashboards[1].ID)
}

func TestRenameDashboard(t *testing.T) {
	app := setupApp(t)
	id := createDashboard(t, app, "Old Name")

	status, env := request(t, app, fiber.MethodPut, fmt.Sprintf("/api/dashboards/%d", id), fiber.Map{"dashboard_name": " New Name "})
	require.Equal(t, fiber.StatusOK, status)

	var dashboard model.Dashboard
	require.NoError(t, json.Unmarshal(env.Data, &dashboard))
	require.Equal(t, "New Name", dashboard.DashboardName)

	status, _ = request(t, app, fiber.MethodPut, "/api/dashboards/9999", fiber.Map{"dashboard_name": "Nope"})
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestGetDashboardNotFound(t *testing.T) {
	app := setupApp(t)

	status, _ := request(t, app, fiber.MethodGet, "/api/dashboards/9999", nil)
	require.Equal(t, fiber.StatusNotFound, status)

	status, _ = request(t, app, fiber.MethodGet, "/api/dashboards/abc", nil)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestDeleteDashboardCascadesToUsers(t *testing.T) {
	app := setupApp(t)
	id := createDashboard(t, app, "Doomed")

	userIds := []uint{
		createUser(t, app, id, fiber.Map{"name": "Alice", "presence": "present"}),
		createUser(t, app, id, fiber.Map{"name": "Bob", "presence": "remote"}),
		createUser(t, app, id, fiber.Map{"name": "Carol", "presence": "off"}),
	}

	request(t, app, fiber.MethodPut, fmt.Sprintf("/api/dashboards/%d/settings", id), fiber.Map{"team_label": "Crew"})

	status, _ := request(t, app, fiber.MethodDelete, fmt.Sprintf("/api/dashboards/%d", id), nil)
	require.Equal(t, fiber.StatusOK, status)

	for _, userId := range userIds {
		status, _ := request(t, app, fiber.MethodGet, fmt.Sprintf("/api/users/%d", userId), nil)
		require.Equal(t, fiber.StatusNotFound, status)
	}

	status, _ = request(t, app, fiber.MethodGet, fmt.Sprintf("/api/dashboards/%d", id), nil)
	require.Equal(t, fiber.StatusNotFound, status)

	status, _ = request(t, app, fiber.MethodDelete, fmt.Sprintf("/api/dashboards/%d", id), nil)
	require.Equal(t, fiber.StatusNotFound, status)
}
