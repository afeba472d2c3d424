package infrastructure

import (
	"context"
	"fmt"
	"time"

	"cv-builder/internal/domain"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const DefaultTimeout = 60 * time.Second

// ChromedpRenderer prints HTML to PDF through headless Chrome's print
// pipeline, so text stays selectable and pages break where the browser
// decides.
type ChromedpRenderer struct {
	chromePath string
	timeout    time.Duration
}

func NewChromedpRenderer(chromePath string, timeout time.Duration) *ChromedpRenderer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromedpRenderer{chromePath: chromePath, timeout: timeout}
}

func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string, opts domain.PrintOptions) ([]byte, error) {
	opts, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	url, cleanup, err := writeScratch(html)
	if err != nil {
		return nil, fmt.Errorf("write scratch html: %w", err)
	}
	defer cleanup()

	tabCtx, closeBrowser := newBrowser(ctx, r.chromePath)
	defer closeBrowser()

	runCtx, cancel := context.WithTimeout(tabCtx, r.timeout)
	defer cancel()

	params := printParams(opts)

	var pdfBuf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = params.Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdfBuf, nil
}

// printParams maps resolved options onto a print call. Paper size is given
// portrait; Chrome swaps it for landscape.
func printParams(opts domain.PrintOptions) *page.PrintToPDFParams {
	width, height := opts.Format.PaperSize()
	top, right, bottom, left := opts.MarginInches()
	return page.PrintToPDF().
		WithPrintBackground(opts.PrintBackground).
		WithLandscape(opts.Landscape).
		WithPaperWidth(width).
		WithPaperHeight(height).
		WithMarginTop(top).
		WithMarginRight(right).
		WithMarginBottom(bottom).
		WithMarginLeft(left)
}
