package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewApp builds the Fiber application shared by every feature.
// Responses are encoded with json-iterator. Framework errors such as unknown
// routes, panics and bodies over the limit are rendered as JSON; the body
// limit is checked by the listener, so app.Test reports it as an error instead.
func NewApp(cfg Config) *fiber.App {
	bodyLimit := cfg.BodyLimitBytes
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           cfg.readTimeout(),
		WriteTimeout:          cfg.writeTimeout(),
		BodyLimit:             bodyLimit,
		UnescapePath:          true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler,
	})
	app.Use(recover.New())

	return app
}

// ErrorHandler writes errors that escaped a handler as {"error": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
