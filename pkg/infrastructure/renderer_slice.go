package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"
	"time"

	"cv-builder/internal/domain"

	"github.com/chromedp/chromedp"
	"github.com/jung-kurt/gofpdf"
)

const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0

	// ViewportWidth is an A4 page width at 96dpi. viewportHeight keeps the
	// viewport no taller than one page so a short document captures as one.
	ViewportWidth  = 794
	viewportHeight = 1122
	captureScale   = 2

	// planToleranceMM absorbs sub-pixel rounding at a page boundary.
	planToleranceMM = 0.5
)

// Capturer turns an HTML document into a single full-page PNG.
type Capturer interface {
	Capture(ctx context.Context, html string) ([]byte, error)
}

// ChromedpCapturer screenshots the whole document in a fresh headless tab.
type ChromedpCapturer struct {
	chromePath string
	timeout    time.Duration
}

func NewChromedpCapturer(chromePath string, timeout time.Duration) *ChromedpCapturer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromedpCapturer{chromePath: chromePath, timeout: timeout}
}

func (c *ChromedpCapturer) Capture(ctx context.Context, html string) ([]byte, error) {
	url, cleanup, err := writeScratch(html)
	if err != nil {
		return nil, fmt.Errorf("write scratch html: %w", err)
	}
	defer cleanup()

	tabCtx, closeBrowser := newBrowser(ctx, c.chromePath)
	defer closeBrowser()

	runCtx, cancel := context.WithTimeout(tabCtx, c.timeout)
	defer cancel()

	var shot []byte
	err = chromedp.Run(runCtx,
		chromedp.EmulateViewport(ViewportWidth, viewportHeight, chromedp.EmulateScale(captureScale)),
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// quality 100 yields PNG
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return shot, nil
}

// Plan is the page layout of one tall image on A4 pages. The image is drawn
// whole on every page, shifted up by one page height each time.
type Plan struct {
	HeightMM float64
	Offsets  []float64
}

func (p Plan) Pages() int { return len(p.Offsets) }

// PlanPages scales an image of widthPx x heightPx to the A4 width and lays
// it out at offsets 0, -297, -594 ... until the image is used up. The page
// count is ceil(height/297) with a minimum of one; a remainder shorter than
// planToleranceMM does not start a new page.
func PlanPages(widthPx, heightPx int) Plan {
	if widthPx <= 0 || heightPx <= 0 {
		return Plan{Offsets: []float64{0}}
	}
	heightMM := float64(heightPx) * PageWidthMM / float64(widthPx)

	var offsets []float64
	for y := 0.0; y == 0 || heightMM-y > planToleranceMM; y += PageHeightMM {
		offsets = append(offsets, -y)
	}
	return Plan{HeightMM: heightMM, Offsets: offsets}
}

// SliceRenderer rasterizes the document and cuts it into A4 pages. Output is
// always A4 portrait; PrintOptions are accepted for interface parity only.
type SliceRenderer struct {
	capturer Capturer
}

func NewSliceRenderer(capturer Capturer) *SliceRenderer {
	return &SliceRenderer{capturer: capturer}
}

func (r *SliceRenderer) RenderHTMLToPDF(ctx context.Context, html string, _ domain.PrintOptions) ([]byte, error) {
	shot, err := r.capturer.Capture(ctx, html)
	if err != nil {
		return nil, err
	}
	return AssemblePages(shot)
}

// AssemblePages builds an A4 PDF from a full-page PNG.
func AssemblePages(shot []byte) ([]byte, error) {
	if len(shot) == 0 {
		return nil, errors.New("empty screenshot")
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	plan := PlanPages(cfg.Width, cfg.Height)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	const name = "document"
	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, imgOpts, bytes.NewReader(shot))
	for _, y := range plan.Offsets {
		pdf.AddPage()
		pdf.ImageOptions(name, 0, y, PageWidthMM, plan.HeightMM, false, imgOpts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}
