package artifact

import (
	"time"

	"github.com/google/uuid"
)

// MIME types accepted from user uploads. Anything else is rejected before
// conversion or storage happens.
const (
	MIMETypePDF = "application/pdf"
	MIMETypePNG = "image/png"
)

// UserUploadKey is the fixed key the upload normalizer stores inbound files
// under. Tools reference uploaded content through this key.
const UserUploadKey = "user_uploaded_file"

// Artifact represents one stored version of a named blob.
//
// Each Artifact is identified by (SessionID, Key, Version). Version numbers
// are assigned by the store, start at 1 and strictly increase per key.
//
// Zero values:
//   - SessionID: uuid.Nil (invalid, required)
//   - Key: "" (invalid, required)
//   - Version: 0 (assigned on save)
//   - MIMEType: "" (invalid, required)
//   - Data: nil (empty payload allowed)
type Artifact struct {
	SessionID uuid.UUID
	Key       string
	Version   int
	MIMEType  string
	Data      []byte
	CreatedAt time.Time
}

// SupportedUploadType reports whether mimeType is on the upload allow-list.
func SupportedUploadType(mimeType string) bool {
	return mimeType == MIMETypePDF || mimeType == MIMETypePNG
}
