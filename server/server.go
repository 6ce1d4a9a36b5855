package server

import (
	"context"

	"github.com/labstack/echo/v4"
)

// Server wraps the HTTP engine so main only deals with lifecycle.
type Server interface {
	Start() error
	Shutdown(ctx context.Context) error
	GetEcho() *echo.Echo
}
