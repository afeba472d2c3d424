package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/internal/model"
	"cv-builder/internal/templates"
	"cv-builder/internal/usecase"
	"cv-builder/pkg/apperror"
	"cv-builder/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	exporter *usecase.Exporter
	registry *templates.Registry
	cvs      *usecase.CVService
	log      logger.Logger
	timeout  time.Duration
}

const defaultExportTimeout = 60 * time.Second

func NewHandler(exporter *usecase.Exporter, registry *templates.Registry, cvs *usecase.CVService, log logger.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultExportTimeout
	}
	return &Handler{exporter: exporter, registry: registry, cvs: cvs, log: log, timeout: timeout}
}

type generateReq struct {
	CV      json.RawMessage      `json:"cv"`
	Layout  string               `json:"layout"`
	Options *domain.PrintOptions `json:"options"`
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.registry.List())
}

// GeneratePDF exports the CV carried in the request body.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	var req generateReq
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	if isAbsent(req.CV) {
		return apperror.NewInvalidInput("CV data is required", "", nil)
	}
	cv, err := decodeCV(req.CV)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	res, err := h.exporter.Export(ctx, usecase.ExportRequest{CV: cv, Layout: req.Layout, Options: req.Options})
	if err != nil {
		return err
	}
	return sendPDF(c, res)
}

func sendPDF(c *fiber.Ctx, res *usecase.ExportResult) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.Filename))
	return c.Status(fiber.StatusOK).Send(res.PDF)
}

// decodeBody treats an empty body as an empty JSON object.
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperror.NewInvalidInput("Invalid request body", err.Error(), err)
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// decodeCV validates raw against the CV schema before decoding it.
func decodeCV(raw []byte) (*domain.CV, error) {
	if err := model.ValidateCV(raw); err != nil {
		return nil, apperror.NewInvalidInput("Invalid CV data", err.Error(), err)
	}
	var cv domain.CV
	if err := json.Unmarshal(raw, &cv); err != nil {
		return nil, apperror.NewInvalidInput("Invalid CV data", err.Error(), err)
	}
	return &cv, nil
}
