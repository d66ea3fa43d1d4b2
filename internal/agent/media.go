package agent

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
)

// NewDataPart builds a media part carrying raw bytes as a base64 data URL,
// the wire form Gemini accepts for inline content.
func NewDataPart(mimeType string, data []byte) *ai.Part {
	encoded := base64.StdEncoding.EncodeToString(data)
	return ai.NewMediaPart(mimeType, "data:"+mimeType+";base64,"+encoded)
}

// DataFromPart extracts the MIME type and raw bytes from a media part
// created with NewDataPart (or any data-URL media part the runtime hands
// us). The part's declared ContentType wins over the URL prefix.
func DataFromPart(part *ai.Part) (mimeType string, data []byte, err error) {
	if part == nil || !part.IsMedia() {
		return "", nil, fmt.Errorf("not a media part")
	}

	url := part.Text
	if !strings.HasPrefix(url, "data:") {
		return "", nil, fmt.Errorf("media part is not inline data: %q", truncateURL(url))
	}

	rest := strings.TrimPrefix(url, "data:")
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URL: %q", truncateURL(url))
	}

	mimeType = part.ContentType
	if mimeType == "" {
		mimeType = strings.TrimSuffix(meta, ";base64")
	}

	if strings.HasSuffix(meta, ";base64") {
		data, err = base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("decoding inline data: %w", err)
		}
		return mimeType, data, nil
	}
	return mimeType, []byte(payload), nil
}

// LastMediaPart returns the last media-carrying part of msg, or nil.
// Last wins: the most recent upload in a message supersedes earlier ones.
func LastMediaPart(msg *ai.Message) *ai.Part {
	if msg == nil {
		return nil
	}
	for i := len(msg.Content) - 1; i >= 0; i-- {
		if msg.Content[i].IsMedia() {
			return msg.Content[i]
		}
	}
	return nil
}

func truncateURL(s string) string {
	if len(s) > 48 {
		return s[:48] + "..."
	}
	return s
}
