package report

import (
	"context"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ReportPDF is the exported document file name.
const ReportPDF = "report.pdf"

const pdfTimeout = 60 * time.Second

// PDFRenderer prints a generated HTML page to PDF through headless
// Chrome. chromePath overrides the browser binary when set.
type PDFRenderer struct {
	chromePath string
}

// NewPDFRenderer constructs a renderer; chromePath may be empty.
func NewPDFRenderer(chromePath string) *PDFRenderer {
	return &PDFRenderer{chromePath: chromePath}
}

// RenderFile loads htmlPath in headless Chrome and writes the printed
// PDF to pdfPath. Local file access is required because the page
// references chart images next to it.
func (r *PDFRenderer) RenderFile(ctx context.Context, htmlPath, pdfPath string) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, pdfTimeout)
	defer cancelRun()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait in inches.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return err
	}

	return os.WriteFile(pdfPath, pdf, 0o644)
}
