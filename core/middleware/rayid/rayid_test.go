package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() (*fiber.App, *string) {
	app := fiber.New()
	app.Use(New())
	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(LocalsKey).(string)
		return c.SendString("ok")
	})
	return app, &seen
}

func TestGeneratesRayID(t *testing.T) {
	app, seen := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rayID := resp.Header.Get(HeaderName)
	assert.NotEmpty(t, rayID)
	assert.Equal(t, rayID, *seen)
}

func TestHonorsIncomingRayID(t *testing.T) {
	app, seen := setupApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "upstream-ray")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "upstream-ray", resp.Header.Get(HeaderName))
	assert.Equal(t, "upstream-ray", *seen)
}

func TestRayIDsAreUnique(t *testing.T) {
	app, _ := setupApp()

	first, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	second, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	assert.NotEqual(t, first.Header.Get(HeaderName), second.Header.Get(HeaderName))
}
