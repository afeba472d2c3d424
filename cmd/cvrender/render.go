package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cv-builder/internal/domain"
	"cv-builder/internal/model"
	"cv-builder/internal/templates"
	"cv-builder/internal/usecase"
	infra "cv-builder/pkg/infrastructure"
	"cv-builder/pkg/logger"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var (
	inPath     string
	outPath    string
	layout     string
	mode       string
	chromePath string
	format     string
	landscape  bool
	htmlOnly   bool
	timeout    time.Duration
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV JSON file",
	Long: `Render a CV JSON file to PDF, or to HTML with --html-only.

Example:
  cvrender render --in cv.json --template classic --out cv.pdf
  cvrender render --in cv.json --html-only --out cv.html
  cvrender render --in cv.json --mode slice`,
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&inPath, "in", "", "CV JSON file")
	renderCmd.Flags().StringVar(&outPath, "out", "", "Output file (default <title>.pdf or <title>.html)")
	renderCmd.Flags().StringVar(&layout, "template", string(templates.DefaultID), "Template id")
	renderCmd.Flags().StringVar(&mode, "mode", infra.ModePrint, "Rasterizer: print or slice")
	renderCmd.Flags().StringVar(&chromePath, "chrome-path", os.Getenv("CHROME_PATH"), "Chrome executable")
	renderCmd.Flags().StringVar(&format, "format", string(domain.FormatA4), "Paper format: A4, Letter or Legal")
	renderCmd.Flags().BoolVar(&landscape, "landscape", false, "Landscape orientation")
	renderCmd.Flags().BoolVar(&htmlOnly, "html-only", false, "Write the rendered HTML instead of a PDF")
	renderCmd.Flags().DurationVar(&timeout, "timeout", infra.DefaultTimeout, "Rasterization timeout")
	_ = renderCmd.MarkFlagRequired("in")
}

func runRender(cmd *cobra.Command, _ []string) error {
	cv, err := readCV(inPath)
	if err != nil {
		return err
	}
	registry := templates.Load(templatesDir, logger.NewNop())

	if htmlOnly {
		html, err := registry.Render(cv, layout)
		if err != nil {
			return err
		}
		out := outPath
		if out == "" {
			out = trimPDF(usecase.Filename(cv.Title)) + ".html"
		}
		return writeOutput(cmd, out, []byte(html))
	}

	renderer, err := infra.NewRenderer(mode, chromePath, timeout)
	if err != nil {
		return err
	}
	exporter := usecase.NewExporter(registry, renderer, logger.NewNop())

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	res, err := exporter.Export(ctx, usecase.ExportRequest{
		CV:      cv,
		Layout:  layout,
		Options: &domain.PrintOptions{Format: domain.PaperFormat(format), Landscape: landscape},
	})
	if err != nil {
		return err
	}
	out := outPath
	if out == "" {
		out = res.Filename
	}
	return writeOutput(cmd, out, res.PDF)
}

func readCV(path string) (*domain.CV, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cv: %w", err)
	}
	if err := model.ValidateCV(b); err != nil {
		return nil, err
	}
	var cv domain.CV
	if err := json.Unmarshal(b, &cv); err != nil {
		return nil, fmt.Errorf("decode cv: %w", err)
	}
	return &cv, nil
}

func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", path, len(b))
	return nil
}

func trimPDF(name string) string {
	return name[:len(name)-len(".pdf")]
}
