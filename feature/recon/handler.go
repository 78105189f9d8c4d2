package recon

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"data-recon/core/engine"
	"data-recon/core/logger"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/v1")
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/reconcile/row", h.HandleCompareRow)
	group.Get("/health", h.HandleHealth)
}

// HandleReconcile runs a full dataset reconciliation.
// @Summary Reconcile Two Datasets
// @Description Compares a source and a target dataset by primary key and returns counts, mismatch details, and a PASSED/FAILED verdict. Sides are inline rows or source specs; reports can be rendered per run.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body recon.ReconcileRequest true "Reconciliation request"
// @Success 200 {object} recon.ReconcileResponse "Reconciliation outcome"
// @Failure 400 {object} map[string]string "Invalid request or datasets"
// @Failure 502 {object} map[string]string "Source unavailable"
// @Router /api/v1/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	var req ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	l.Info("reconciliation requested",
		zap.Strings("primary_key", req.PrimaryKey),
		zap.Bool("include_report", req.IncludeReport),
	)

	resp, err := h.service.Reconcile(c.Context(), req)
	if err != nil {
		return h.renderError(c, l, err)
	}

	l.Info("reconciliation served",
		zap.String("run_id", resp.RunID),
		zap.String("status", string(resp.Result.Status)),
	)
	return c.JSON(resp)
}

// HandleCompareRow compares a single pair of rows.
// @Summary Compare Two Rows
// @Description Compares one source row against one target row column by column, without primary-key context.
// @Tags reconcile
// @Accept json
// @Produce json
// @Param request body recon.RowCompareRequest true "Row comparison request"
// @Success 200 {object} engine.RowComparison "Per-column outcome"
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /api/v1/reconcile/row [post]
func (h *Handler) HandleCompareRow(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	var req RowCompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	cmp, err := h.service.CompareRow(req)
	if err != nil {
		return h.renderError(c, l, err)
	}
	return c.JSON(cmp)
}

// HandleHealth reports service liveness and dependency state.
// @Summary Health Check
// @Description Reports liveness plus the state of the configured database and storage dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} recon.HealthStatus "Healthy"
// @Failure 503 {object} recon.HealthStatus "Degraded"
// @Router /api/v1/health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	st := h.service.Health(c.Context())
	if st.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(st)
	}
	return c.JSON(st)
}

// isDatasetError reports whether the error is one of the engine's
// validation kinds, all of which the caller can fix.
func isDatasetError(err error) bool {
	return engine.IsSchemaError(err) || engine.IsIntegrityError(err) || engine.IsConfigError(err)
}

// renderError maps the error taxonomy onto status codes.
func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var reqErr *RequestError
	var srcErr *SourceError

	switch {
	case errors.As(err, &srcErr):
		l.Error("side load failed", zap.String("side", srcErr.Side), zap.Error(srcErr.Err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &reqErr),
		isDatasetError(err):
		l.Warn("rejected reconciliation request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
