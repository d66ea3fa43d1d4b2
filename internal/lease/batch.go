package lease

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// agreementSource produces the tenant and body for one document. Both
// methods are total: failures inside the source degrade to fallback text.
type agreementSource interface {
	TenantName(ctx context.Context) string
	Agreement(ctx context.Context, tenantName string) string
}

// fileRenderer lays text out as a PDF at filename.
type fileRenderer interface {
	RenderFile(text, filename string) error
}

// Batch runs the generate/render/upload cycle a fixed number of times.
// Iterations are strictly sequential and isolated: one document failing to
// render or upload is logged and the next document still runs.
type Batch struct {
	source   agreementSource
	renderer fileRenderer
	uploader Uploader
	dir      string
	logger   *slog.Logger
}

// NewBatch creates a runner that writes scratch PDFs into dir before
// uploading them. All of source, renderer, and uploader are required.
func NewBatch(source agreementSource, renderer fileRenderer, uploader Uploader, dir string, logger *slog.Logger) (*Batch, error) {
	if source == nil {
		return nil, fmt.Errorf("lease: agreement source is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("lease: renderer is required")
	}
	if uploader == nil {
		return nil, fmt.Errorf("lease: uploader is required")
	}
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{source: source, renderer: renderer, uploader: uploader, dir: dir, logger: logger}, nil
}

// Run generates n agreements. It returns an error only when ctx is
// canceled between iterations; per-document failures are logged and
// swallowed so the batch always attempts all n.
func (b *Batch) Run(ctx context.Context, n int) error {
	b.logger.Info("starting land lease agreement generation", "count", n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("batch interrupted after %d of %d agreements: %w", i, n, err)
		}

		filename := fmt.Sprintf("lease_agreement_%d.pdf", i+1)
		b.logger.Info("generating agreement", "index", i+1, "total", n)

		tenant := b.source.TenantName(ctx)
		b.logger.Info("tenant name generated", "tenant", tenant)

		body := b.source.Agreement(ctx, tenant)

		if err := b.renderAndUpload(ctx, body, filename); err != nil {
			b.logger.Error("agreement cycle failed", "file", filename, "error", err)
		}
	}

	b.logger.Info("agreement generation finished", "count", n)
	return nil
}

// renderAndUpload writes one local PDF and ships it. The local file is
// removed whether or not the upload succeeds.
func (b *Batch) renderAndUpload(ctx context.Context, body, filename string) error {
	local := filepath.Join(b.dir, filename)

	defer func() {
		if err := os.Remove(local); err != nil {
			if !os.IsNotExist(err) {
				b.logger.Warn("failed to remove local file", "path", local, "error", err)
			}
			return
		}
		b.logger.Debug("removed local file", "path", local)
	}()

	if err := b.renderer.RenderFile(body, local); err != nil {
		return fmt.Errorf("rendering %s: %w", filename, err)
	}
	if err := b.uploader.UploadFile(ctx, local, filename); err != nil {
		return fmt.Errorf("uploading %s: %w", filename, err)
	}
	return nil
}
