package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/pkg/logger"
)

// El middleware de swagger entra en pánico si el archivo no existe; la API
// debe arrancar igual, solo sin el Swagger UI.
func TestRegisterSwagger_ArchivoAusenteNoDetieneLaAPI(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		registerSwagger(app, logger.Nop(), "./no-existe/swagger.json")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterSwagger_SirveElUIConElArchivoDelRepo(t *testing.T) {
	app := fiber.New()

	// Ruta relativa al paquete; en ejecución el binario la lee desde la raíz.
	registerSwagger(app, logger.Nop(), "../../docs/swagger.json")

	resp, err := app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
