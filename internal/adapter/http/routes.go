package http

import (
	"cv-builder/pkg/auth"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the public export endpoints and the authenticated
// CV endpoints on app.
func RegisterRoutes(app *fiber.App, h *Handler, jwtSvc *auth.JWTService) {
	app.Get("/health", h.Health)
	app.Post("/generate-pdf", h.GeneratePDF)

	api := app.Group("/api")
	api.Get("/pdf/health", h.Health)
	api.Post("/pdf/generate", h.GeneratePDF)
	api.Get("/templates", h.ListTemplates)

	cvs := api.Group("/cvs", AuthMiddleware(jwtSvc))
	cvs.Get("/", h.ListCVs)
	cvs.Post("/", h.CreateCV)
	cvs.Get("/:id", h.GetCV)
	cvs.Put("/:id", h.UpdateCV)
	cvs.Delete("/:id", h.DeleteCV)
	cvs.Post("/:id/export", h.ExportCV)
}
