package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(apiKey string) *fiber.App {
	app := fiber.New()
	app.Use(New(Config{ApiKey: apiKey}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthDisabledWithoutKey(t *testing.T) {
	app := setupApp("")

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthRejectsMissingKey(t *testing.T) {
	app := setupApp("secret")

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthRejectsWrongKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "guess")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthAcceptsCorrectKey(t *testing.T) {
	app := setupApp("secret")

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderName, "secret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
