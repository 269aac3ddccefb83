package integrity

import (
	"errors"

	"param-host/core/logger"
	"param-host/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/documents", h.HandleDocumentsCheck)
	group.Get("/schema", h.HandleSchemaCheck)
	group.Get("/shape", h.HandleShapeCheck)
}

// HandleIntegrityCheck runs every check and reports each one separately.
// A failing check does not fail the request.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]any)

	if missing, err := h.service.CheckStructure(ctx); err != nil {
		report["structure"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = fiber.Map{"status": "ok", "missing": missing}
	}

	if docs, err := h.service.CheckDocuments(ctx); err != nil {
		report["documents"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["documents"] = docs
	}

	if table, err := h.service.CheckSchema(); err != nil {
		report["schema"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = table
	}

	if shape, err := h.service.CheckShape(); err != nil {
		report["shape"] = fiber.Map{"status": "error", "error": err.Error()}
	} else {
		report["shape"] = shape
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and, with ?fix=true, repairs the bucket layout.
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.QueryBool("fix")

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return h.fail(c, err)
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDocumentsCheck builds every stored parameter document.
func (h *Handler) HandleDocumentsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDocuments(c.Context())
	if err != nil {
		l.Error("Documents check failed", zap.Error(err))
		return h.fail(c, err)
	}
	if len(report.Invalid) > 0 {
		l.Warn("Invalid parameter documents", zap.Int("count", len(report.Invalid)))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the snapshot table.
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleShapeCheck compares the hosted parameters with their plugs.
func (h *Handler) HandleShapeCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckShape()
	if err != nil {
		l.Error("Shape check failed", zap.Error(err))
		return h.fail(c, err)
	}
	if report.Status != "ok" {
		l.Warn("Plug tree drifted from parameters",
			zap.Strings("missing", report.Missing),
			zap.Strings("stale", report.Stale))
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNoStorage), errors.Is(err, ErrNoSession), errors.Is(err, checks.ErrNoDatabase):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
