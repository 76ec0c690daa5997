package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon_manager/dto"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSalonBodyStashesInput(t *testing.T) {
	app := fiber.New()
	app.Post("/salons", SalonBody(), func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputSalon").(*dto.SalonDTO)
		require.True(t, ok)
		assert.Equal(t, "Bliss", input.Name)
		assert.Equal(t, uint(5), input.OwnerID)
		return c.SendStatus(fiber.StatusOK)
	})

	status := postJSON(t, app, "/salons", `{"name":"Bliss","ownerId":5}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestSalonBodyRejectsMissingRequired(t *testing.T) {
	app := fiber.New()
	app.Post("/salons", SalonBody(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/salons", `{"ownerId":5}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/salons", `{"name":"Bliss"}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/salons", `not json`))
}

func TestSalonBodyRejectsUnknownEnum(t *testing.T) {
	app := fiber.New()
	app.Post("/salons", SalonBody(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	status := postJSON(t, app, "/salons", `{"name":"Bliss","ownerId":5,"status":"OPEN"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestOfferPriceRange(t *testing.T) {
	app := fiber.New()
	app.Post("/offers", OfferBody(), OfferPriceRange(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	ok := `{"name":"Cut","priceLow":100,"priceHigh":200}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/offers", ok))

	equal := `{"name":"Cut","priceLow":150,"priceHigh":150}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/offers", equal))

	inverted := `{"name":"Cut","priceLow":300,"priceHigh":200}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/offers", inverted))
}

func TestRecordTimeWindow(t *testing.T) {
	app := fiber.New()
	app.Post("/records", RecordBody(), RecordTimeWindow(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	ok := `{"startAt":"2026-09-01T10:00:00Z","endAt":"2026-09-01T11:00:00Z","userId":1,"salonId":2}`
	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/records", ok))

	backwards := `{"startAt":"2026-09-01T11:00:00Z","endAt":"2026-09-01T10:00:00Z","userId":1,"salonId":2}`
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/records", backwards))
}

func TestGetById(t *testing.T) {
	app := fiber.New()
	app.Get("/salons/:id", GetById("id"), func(c *fiber.Ctx) error {
		assert.Equal(t, uint(42), c.Locals("inputId").(uint))
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/salons/42", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/salons/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/salons/-3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginBody(t *testing.T) {
	app := fiber.New()
	app.Post("/login", Login(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, "/login", `{"login":"admin","password":"secret"}`))
	assert.Equal(t, fiber.StatusBadRequest, postJSON(t, app, "/login", `{"login":"admin"}`))
}
