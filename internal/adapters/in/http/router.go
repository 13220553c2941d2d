package http

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP surface: recovery, request ids, access logging and
// contract validation in front of the API routes, plus the Swagger UI.
func NewEcho(server ServerInterface, log *slog.Logger) (*echo.Echo, error) {
	if log == nil {
		log = slog.Default()
	}

	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.ERROR)
	e.HTTPErrorHandler = ErrorHandler(log)

	e.Use(
		middleware.Recover(),
		RequestID(),
		RequestLogger(log),
		validator,
	)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	RegisterHandlers(e, server)

	return e, nil
}
