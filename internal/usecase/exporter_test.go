package usecase

import (
	"context"
	"errors"
	"testing"

	"cv-builder/internal/domain"
	"cv-builder/internal/templates"
	"cv-builder/pkg/apperror"
	"cv-builder/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	pdf   []byte
	err   error
	panic bool

	html string
	opts domain.PrintOptions
}

func (f *fakeRenderer) RenderHTMLToPDF(_ context.Context, html string, opts domain.PrintOptions) ([]byte, error) {
	if f.panic {
		panic("browser went away")
	}
	f.html, f.opts = html, opts
	return f.pdf, f.err
}

func okRenderer() *fakeRenderer {
	return &fakeRenderer{pdf: []byte("%PDF-1.7\n%fake")}
}

func testCV() *domain.CV {
	return &domain.CV{
		Title:        "Senior Engineer",
		PersonalInfo: domain.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com"},
		Skills:       []string{"Go"},
	}
}

func newTestExporter(r Renderer) *Exporter {
	return NewExporter(templates.Builtin(), r, logger.NewNop())
}

func TestExportRequiresCV(t *testing.T) {
	_, err := newTestExporter(okRenderer()).Export(context.Background(), ExportRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CV data is required", appErr.Message)
}

func TestExportDefaults(t *testing.T) {
	r := okRenderer()
	res, err := newTestExporter(r).Export(context.Background(), ExportRequest{CV: testCV()})
	require.NoError(t, err)

	assert.Equal(t, "Senior Engineer.pdf", res.Filename)
	assert.Equal(t, templates.Modern, res.Template)
	assert.Equal(t, r.pdf, res.PDF)
	assert.Contains(t, r.html, "cv-modern")
	assert.Contains(t, r.html, "Jane Doe")

	assert.Equal(t, domain.FormatA4, r.opts.Format)
	assert.False(t, r.opts.Landscape)
	assert.True(t, r.opts.PrintBackground)
	assert.Equal(t, domain.Margin{Top: "20px", Right: "20px", Bottom: "20px", Left: "20px"}, r.opts.Margin)
}

func TestExportLayoutAndOptions(t *testing.T) {
	r := okRenderer()
	res, err := newTestExporter(r).Export(context.Background(), ExportRequest{
		CV:      testCV(),
		Layout:  "Executive",
		Options: &domain.PrintOptions{Format: "letter", Landscape: true, Margin: domain.Margin{Top: "1cm"}},
	})
	require.NoError(t, err)
	assert.Equal(t, templates.Executive, res.Template)
	assert.Equal(t, domain.FormatLetter, r.opts.Format)
	assert.True(t, r.opts.Landscape)
	assert.Equal(t, "1cm", r.opts.Margin.Top)
	assert.Equal(t, "20px", r.opts.Margin.Left)

	res, err = newTestExporter(okRenderer()).Export(context.Background(), ExportRequest{CV: testCV(), Layout: "unknown"})
	require.NoError(t, err)
	assert.Equal(t, templates.Modern, res.Template)
}

func TestExportInvalidOptions(t *testing.T) {
	_, err := newTestExporter(okRenderer()).Export(context.Background(), ExportRequest{
		CV:      testCV(),
		Options: &domain.PrintOptions{Margin: domain.Margin{Left: "wide"}},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestExportFailures(t *testing.T) {
	tests := map[string]*fakeRenderer{
		"renderer error": {err: errors.New("chrome not found")},
		"renderer panic": {panic: true},
		"not a pdf":      {pdf: []byte("<html>")},
		"empty output":   {},
	}
	for name, r := range tests {
		t.Run(name, func(t *testing.T) {
			res, err := newTestExporter(r).Export(context.Background(), ExportRequest{CV: testCV()})
			assert.Nil(t, res)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrExport)
			assert.Equal(t, 500, apperror.ToHTTPStatus(err))

			var appErr *apperror.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "Failed to generate PDF", appErr.Message)
			assert.NotEmpty(t, appErr.Details)
		})
	}
}

func TestFilename(t *testing.T) {
	tests := map[string]string{
		"":                   "CV.pdf",
		"   ":                "CV.pdf",
		"My CV":              "My CV.pdf",
		`Jane "JD" Doe`:      "Jane _JD_ Doe.pdf",
		"a/b\\c":             "a_b_c.pdf",
		"line\nbreak\r\tend": "line_break__end.pdf",
		"Résumé 2024":        "Résumé 2024.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, Filename(in), in)
	}
}
