package common

import (
	"context"
	"errors"
	"io"
	"tpw/src/config"
	"tpw/src/lib"

	"github.com/go-rod/rod/lib/proto"
)

// RenderTimeoutError marks a render that exceeded the configured time bound.
type RenderTimeoutError struct {
	Err error
}

func (e *RenderTimeoutError) Error() string {
	return "pdf render timed out: " + e.Err.Error()
}

func (e *RenderTimeoutError) Unwrap() error { return e.Err }

// BrowserLaunchError marks a failure to obtain a working browser or page.
type BrowserLaunchError struct {
	Err error
}

func (e *BrowserLaunchError) Error() string {
	return "browser unavailable: " + e.Err.Error()
}

func (e *BrowserLaunchError) Unwrap() error { return e.Err }

// A4 in inches, margins 18mm top/bottom and 15mm left/right.
var (
	a4Width    = 8.27
	a4Height   = 11.69
	marginTall = 0.709
	marginWide = 0.591
)

// GeneratePackagePDF runs the full document pipeline: image inlining
// pre-pass, HTML synthesis, then a render on an ephemeral page from the
// shared browser. Timeout and launch failures are distinguishable so the
// HTTP layer can log them differently.
func GeneratePackagePDF(ctx context.Context, m PackagePdfModel) ([]byte, error) {
	InlineLocalImages(&m, config.UploadsRoot(), config.PublicBaseURL())
	html := BuildPackageHTML(m)

	ctx, cancel := context.WithTimeout(ctx, config.PdfRenderTimeout())
	defer cancel()

	page, release, err := lib.GetBrowserManager().Page(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &RenderTimeoutError{Err: err}
		}
		return nil, &BrowserLaunchError{Err: err}
	}
	defer release()

	if err := (proto.EmulationSetScriptExecutionDisabled{Value: true}).Call(page); err != nil {
		return nil, classifyRenderErr(ctx, err)
	}
	if err := page.SetDocumentContent(html); err != nil {
		return nil, classifyRenderErr(ctx, err)
	}
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &a4Width,
		PaperHeight:     &a4Height,
		MarginTop:       &marginTall,
		MarginBottom:    &marginTall,
		MarginLeft:      &marginWide,
		MarginRight:     &marginWide,
	})
	if err != nil {
		return nil, classifyRenderErr(ctx, err)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, classifyRenderErr(ctx, err)
	}
	return data, nil
}

func classifyRenderErr(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return &RenderTimeoutError{Err: err}
	}
	return &BrowserLaunchError{Err: err}
}
