package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"
)

// ErrRenderFailed marks a PDF that could not be produced although the CV
// itself loaded.
var ErrRenderFailed = errors.New("pdf rendering failed")

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Exporter turns the complete CV into a printable HTML document and a PDF.
type Exporter struct {
	service  *CVService
	renderer Renderer
	tpl      *template.Template
	css      string
	logger   *slog.Logger
	attempts int
	backoff  time.Duration
}

// NewExporter uses tpl (the printable CV template) and inlines css into its head.
func NewExporter(service *CVService, renderer Renderer, tpl *template.Template, css string, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{
		service:  service,
		renderer: renderer,
		tpl:      tpl,
		css:      css,
		logger:   logger,
		attempts: 3,
		backoff:  time.Second,
	}
}

// Retry overrides how many render attempts PDF makes and the initial backoff
// between them. Non-positive attempts keep the current value.
func (e *Exporter) Retry(attempts int, backoff time.Duration) *Exporter {
	if attempts > 0 {
		e.attempts = attempts
	}
	if backoff >= 0 {
		e.backoff = backoff
	}
	return e
}

// HTML renders the printable CV.
func (e *Exporter) HTML(ctx context.Context) (string, error) {
	cv, err := e.service.CompleteCV(ctx)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	data := map[string]interface{}{
		"CV":                cv,
		"YearsOfExperience": yearsSince(cv.Experience, e.service.now()),
	}
	if err := e.tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering printable cv: %w", err)
	}

	html := buf.String()
	if e.css != "" {
		cssBlock := "<style>" + e.css + "</style>"
		// inject stylesheet at top of head so the PDF does not depend on external files
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}

// PDF renders the printable CV through the renderer. Chrome occasionally
// fails to start, so rendering is attempted a few times with backoff and the
// output is checked for the PDF signature.
func (e *Exporter) PDF(ctx context.Context) ([]byte, error) {
	html, err := e.HTML(ctx)
	if err != nil {
		return nil, err
	}

	var pdfBytes []byte
	var renderErr error
	for i := 0; i < e.attempts; i++ {
		pdfBytes, renderErr = e.renderer.RenderHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				return pdfBytes, nil
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		e.logger.Warn("pdf render attempt failed", "attempt", i+1, "error", renderErr)
		if i < e.attempts-1 {
			select {
			case <-time.After(time.Duration(1<<i) * e.backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %w", ErrRenderFailed, e.attempts, renderErr)
}
