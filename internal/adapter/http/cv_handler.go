package http

import (
	"context"

	"cv-builder/internal/domain"
	"cv-builder/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type exportReq struct {
	Layout  string               `json:"layout"`
	Options *domain.PrintOptions `json:"options"`
}

func (h *Handler) ListCVs(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	cvs, err := h.cvs.List(c.UserContext(), owner, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}
	return c.JSON(cvs)
}

func (h *Handler) CreateCV(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	if isAbsent(c.Body()) {
		return apperror.NewInvalidInput("CV data is required", "", nil)
	}
	cv, err := decodeCV(c.Body())
	if err != nil {
		return err
	}
	created, err := h.cvs.Create(c.UserContext(), owner, cv)
	if err != nil {
		return err
	}
	h.log.Info("cv created", zap.String("cv_id", created.ID), zap.String("owner_id", owner.String()))
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) GetCV(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	cv, err := h.cvs.Get(c.UserContext(), owner, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(cv)
}

func (h *Handler) UpdateCV(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	if isAbsent(c.Body()) {
		return apperror.NewInvalidInput("CV data is required", "", nil)
	}
	cv, err := decodeCV(c.Body())
	if err != nil {
		return err
	}
	updated, err := h.cvs.Update(c.UserContext(), owner, c.Params("id"), cv)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (h *Handler) DeleteCV(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	if err := h.cvs.Delete(c.UserContext(), owner, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ExportCV renders a stored CV. The body is optional.
func (h *Handler) ExportCV(c *fiber.Ctx) error {
	owner, err := ownerFrom(c)
	if err != nil {
		return err
	}
	var req exportReq
	if err := decodeBody(c, &req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	res, err := h.cvs.Export(ctx, owner, c.Params("id"), req.Layout, req.Options)
	if err != nil {
		return err
	}
	return sendPDF(c, res)
}
