package parameters

import (
	"errors"
	"strings"

	"param-host/core/document"
	"param-host/core/logger"
	"param-host/core/parameter"
	"param-host/core/utils"
	"param-host/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the hosted parameters.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the parameter routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/parameters")
	group.Get("/", h.HandleValues)
	group.Put("/", h.HandleSetValues)
	group.Get("/plugs", h.HandlePlugs)
	group.Put("/plugs/*", h.HandleSetPlug)
	group.Get("/adapters", h.HandleAdapters)
	group.Post("/refresh", h.HandleRefresh)
	group.Post("/resync", h.HandleResync)
	group.Post("/snapshot", h.HandleSnapshot)
	group.Post("/restore", h.HandleRestore)
	group.Post("/export", h.HandleExport)
}

// HandleValues returns the current parameter values.
func (h *Handler) HandleValues(c *fiber.Ctx) error {
	values, err := h.service.Values()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"session": h.service.Session(),
		"source":  h.service.Source(),
		"values":  values,
	})
}

// HandleSetValues applies a nested value map to the parameters and the plugs.
func (h *Handler) HandleSetValues(c *fiber.Ctx) error {
	var values map[string]any
	if err := c.BodyParser(&values); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.SetValues(values); err != nil {
		return h.fail(c, err)
	}
	return h.HandleValues(c)
}

// HandlePlugs returns the host plug tree.
func (h *Handler) HandlePlugs(c *fiber.Ctx) error {
	return c.JSON(h.service.Plugs())
}

type setPlugRequest struct {
	Value any `json:"value"`
}

// HandleSetPlug sets one plug, addressed by a slash separated path below the
// parameters plug, and pushes the change to the parameters.
func (h *Handler) HandleSetPlug(c *fiber.Ctx) error {
	path := strings.ReplaceAll(strings.Trim(c.Params("*"), "/"), "/", ".")

	var req setPlugRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.service.SetPlug(path, req.Value); err != nil {
		return h.fail(c, err)
	}
	logger.WithRayID(h.logger, c).Debug("Plug set", zap.String("path", path))
	return c.JSON(fiber.Map{"status": "ok", "path": path})
}

// HandleAdapters lists the adaptable parameter types.
func (h *Handler) HandleAdapters(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"adapters": h.service.Adapters()})
}

// HandleRefresh pushes parameter values to the plugs.
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "refreshed"})
}

type resyncRequest struct {
	Source   string             `json:"source"`
	Document *document.Document `json:"document"`
}

// HandleResync reconciles the plugs against another document, given inline or
// by source.
func (h *Handler) HandleResync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req resyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doc, source := req.Document, "inline"
	if doc == nil {
		if req.Source == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source or document is required"})
		}
		loaded, err := h.service.Load(c.Context(), req.Source)
		if err != nil {
			l.Error("Document load failed", zap.String("source", req.Source), zap.Error(err))
			return h.fail(c, err)
		}
		doc, source = loaded, req.Source
	}

	if err := h.service.Resync(doc, source); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(h.service.Plugs())
}

// HandleSnapshot saves the plug values.
func (h *Handler) HandleSnapshot(c *fiber.Ctx) error {
	n, err := h.service.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "saved", "values": n})
}

// HandleRestore restores the saved plug values.
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	res, err := h.service.Restore(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

// HandleExport uploads the values to the bucket. ?format= selects yaml (default), json or toml.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	format := document.Format(c.Query("format", string(document.FormatYAML)))
	key, err := h.service.Export(c.Context(), format)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"status": "exported", "key": key})
}

// fail maps service errors to HTTP statuses.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrPlugNotFound), errors.Is(err, snapshot.ErrNoSnapshot):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrNotOpen):
		status = fiber.StatusConflict
	case errors.Is(err, ErrUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, parameter.ErrOutOfRange),
		errors.Is(err, utils.ErrNotConvertible),
		errors.Is(err, document.ErrInvalidNode),
		errors.Is(err, document.ErrUnknownFormat),
		errors.Is(err, parameter.ErrDuplicateName):
		status = fiber.StatusUnprocessableEntity
	}
	if status == fiber.StatusInternalServerError {
		logger.WithRayID(h.logger, c).Error("Parameters request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
