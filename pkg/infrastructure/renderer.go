package infrastructure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cv-builder/internal/domain"
)

const (
	ModePrint = "print"
	ModeSlice = "slice"
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string, opts domain.PrintOptions) ([]byte, error)
}

// NewRenderer picks the rasterizer named by mode. An empty mode means print.
func NewRenderer(mode, chromePath string, timeout time.Duration) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", ModePrint:
		return NewChromedpRenderer(chromePath, timeout), nil
	case ModeSlice:
		return NewSliceRenderer(NewChromedpCapturer(chromePath, timeout)), nil
	}
	return nil, fmt.Errorf("unknown rasterizer %q (want %s or %s)", mode, ModePrint, ModeSlice)
}
