package infrastructure

import (
	"context"
	"os"
	"path/filepath"

	"github.com/chromedp/chromedp"
)

// newBrowser starts a dedicated headless Chrome and opens one tab. The
// returned cancel closes the tab and kills the browser.
func newBrowser(ctx context.Context, chromePath string) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	return tabCtx, func() {
		cancelTab()
		cancelAlloc()
	}
}

// writeScratch writes html into a fresh temp dir and returns its file:// URL.
// cleanup removes the directory and must always be called.
func writeScratch(html string) (string, func(), error) {
	dir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, "index.html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		cleanup()
		return "", func() {}, err
	}
	return "file://" + path, cleanup, nil
}
