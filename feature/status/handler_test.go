package status

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"unity-bridge/core/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBridge struct {
	connected bool
}

func (s *stubBridge) IsConnected() bool { return s.connected }

func setupTestApp(connected bool) *fiber.App {
	app := fiber.New()
	f := NewFeature(&stubBridge{connected: connected}, config.Default(), zap.NewNop(), "1.2.3")
	_ = f.Load(app)
	return app
}

func TestHandleHealth(t *testing.T) {
	app := setupTestApp(true)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.2.3", body["version"])
	assert.Equal(t, "localhost", body["unity_host"])
	assert.Equal(t, float64(6400), body["unity_port"])
	assert.Equal(t, true, body["unity_connected"])
}

func TestHandleHealth_Disconnected(t *testing.T) {
	app := setupTestApp(false)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["unity_connected"])
}

func TestHandleConfig(t *testing.T) {
	app := setupTestApp(true)

	resp, err := app.Test(httptest.NewRequest("GET", "/config", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "localhost", body["unity"]["host"])
	assert.Equal(t, float64(6400), body["unity"]["port"])
	assert.Equal(t, float64(3), body["unity"]["max_retries"])
	assert.Equal(t, float64(6500), body["server"]["port"])
	assert.Equal(t, float64(6501), body["server"]["management_port"])
	assert.Equal(t, "INFO", body["log"]["level"])
}
