package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"cv-builder/internal/domain"
	"cv-builder/internal/templates"
	"cv-builder/pkg/apperror"
	"cv-builder/pkg/logger"

	"go.uber.org/zap"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts domain.PrintOptions) ([]byte, error)
}

// MarkupRenderer turns a CV into HTML. *templates.Registry implements it.
type MarkupRenderer interface {
	Render(cv *domain.CV, name string) (string, error)
	ResolveID(name string) templates.ID
}

type ExportRequest struct {
	CV      *domain.CV
	Layout  string
	Options *domain.PrintOptions
}

type ExportResult struct {
	PDF      []byte
	Filename string
	Template templates.ID
}

// Exporter renders a CV with the requested layout and rasterizes it to PDF.
// It keeps no state between calls.
type Exporter struct {
	markup   MarkupRenderer
	renderer Renderer
	log      logger.Logger
}

func NewExporter(markup MarkupRenderer, renderer Renderer, log logger.Logger) *Exporter {
	return &Exporter{markup: markup, renderer: renderer, log: log}
}

func (e *Exporter) Export(ctx context.Context, req ExportRequest) (res *ExportResult, err error) {
	if req.CV == nil {
		return nil, apperror.NewInvalidInput("CV data is required", "", nil)
	}
	opts, err := req.Options.Resolve()
	if err != nil {
		return nil, apperror.NewInvalidInput("Invalid print options", err.Error(), err)
	}

	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = apperror.NewExportFailed(fmt.Errorf("panic during export: %v", r))
		}
	}()

	id := e.markup.ResolveID(req.Layout)
	start := time.Now()

	html, err := e.markup.Render(req.CV, string(id))
	if err != nil {
		return nil, apperror.NewExportFailed(err)
	}
	pdf, err := e.renderer.RenderHTMLToPDF(ctx, html, opts)
	if err != nil {
		e.log.Error("rasterize failed", err, zap.String("template", string(id)))
		return nil, apperror.NewExportFailed(err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return nil, apperror.NewExportFailed(errors.New("renderer did not produce a PDF document"))
	}

	e.log.Info("cv exported",
		zap.String("template", string(id)),
		zap.Int("bytes", len(pdf)),
		zap.Duration("took", time.Since(start)),
	)
	return &ExportResult{PDF: pdf, Filename: Filename(req.CV.Title), Template: id}, nil
}

// Filename derives the attachment name from a CV title. Quotes, slashes and
// control characters are replaced so the value is safe inside a quoted
// Content-Disposition parameter.
func Filename(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "CV"
	}
	clean := strings.Map(func(r rune) rune {
		if r == '"' || r == '\\' || r == '/' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, title)
	return clean + ".pdf"
}
