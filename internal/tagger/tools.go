package tagger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/agent"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
)

// Tool responses surfaced verbatim to the model.
const (
	noFileMessage   = "Did not find file data in the user context."
	noLabelsMessage = "No labels were extracted from the image."
)

// GetUserFile locates the most recent file the user attached to this turn
// and stores it under the fixed upload key. PDF uploads are rasterized to a
// first-page PNG before storage; nothing outside the PDF/PNG allow-list is
// ever written to the store.
//
// Every failure comes back as a display string. Tools answer the model, and
// the model is expected to relay problems conversationally rather than
// abort the turn.
func (t *Toolset) GetUserFile(ctx context.Context, cb *agent.CallbackContext) string {
	part := agent.LastMediaPart(cb.UserContent)
	if part == nil {
		return noFileMessage
	}

	mimeType, data, err := agent.DataFromPart(part)
	if err != nil {
		return fmt.Sprintf("Error looking for user file: %v", err)
	}

	if !artifact.SupportedUploadType(mimeType) {
		return fmt.Sprintf("Error: Unsupported file type. Please upload a PNG or PDF file. Found type: %s.", mimeType)
	}

	if mimeType == artifact.MIMETypePDF {
		pngData, err := t.converter.FirstPagePNG(data)
		if err != nil {
			return fmt.Sprintf("Error converting PDF to PNG: %v", err)
		}
		mimeType, data = artifact.MIMETypePNG, pngData
	}

	version, err := t.store.Save(ctx, cb.SessionID, artifact.UserUploadKey, mimeType, data)
	if err != nil {
		return fmt.Sprintf("Error saving uploaded file: %v", err)
	}

	t.logger.Debug("stored user upload",
		"session_id", cb.SessionID,
		"mime_type", mimeType,
		"version", version,
		"bytes", len(data))

	return fmt.Sprintf("The file of type %s and size %d bytes was saved as artifact '%s' (version: %d).\nNote: PDF files are converted to a single PNG image of the first page.",
		mimeType, len(data), artifact.UserUploadKey, version)
}

// ImageEntityExtraction loads the artifact stored under artifactKey and
// runs label detection over it, returning the labels as one display string
// in the service's confidence order.
func (t *Toolset) ImageEntityExtraction(ctx context.Context, cb *agent.CallbackContext, artifactKey string) string {
	art, err := t.store.Load(ctx, cb.SessionID, artifactKey)
	if errors.Is(err, artifact.ErrNotFound) {
		return fmt.Sprintf("Error: Artifact with key '%s' not found. Please load the file first.", artifactKey)
	}
	if err != nil {
		return fmt.Sprintf("An error occurred during label extraction for artifact '%s': %v", artifactKey, err)
	}

	labels, err := t.labeler.Labels(ctx, art.Data)
	if err != nil {
		return fmt.Sprintf("An error occurred during label extraction for artifact '%s': %v", artifactKey, err)
	}

	if len(labels) == 0 {
		return noLabelsMessage
	}
	return "Extracted labels: " + strings.Join(labels, ", ")
}
