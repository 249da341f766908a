package http

import (
	"github.com/MKhiriev/ff-to-go/internal/atom"
	"github.com/MKhiriev/ff-to-go/internal/config"
	"github.com/MKhiriev/ff-to-go/internal/display"
	"github.com/MKhiriev/ff-to-go/internal/logger"
	"github.com/MKhiriev/ff-to-go/internal/service"
)

// appName is reported in the App-Name header of every response.
const appName = "ff-to-go"

type Handler struct {
	services *service.Services

	// filters prepare entries for JSON replies.
	filters *display.Filters
	// atom renders feed pages requested with output=atom.
	atom *atom.Writer

	cfg config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		filters:  display.NewFilters(cfg.App.SiteURL, cfg.Display.ProxyURL),
		atom:     atom.NewWriter(cfg.App.SiteURL, cfg.Adapter.BaseURL),
		cfg:      cfg.Server,
		logger:   logger,
	}
}
