// Package vision wraps Cloud Vision label detection behind a small
// interface so agent tools can be tested without the remote service.
package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"
)

// maxLabels caps how many label annotations a single detection returns.
const maxLabels = 10

// ErrNoImage is returned when label detection is asked to run on empty data.
var ErrNoImage = errors.New("vision: no image data")

// Labeler extracts descriptive labels from PNG image bytes.
type Labeler interface {
	Labels(ctx context.Context, imageData []byte) ([]string, error)
}

// Client detects labels with the Cloud Vision API.
type Client struct {
	annotator *vision.ImageAnnotatorClient
}

// NewClient connects to Cloud Vision using ambient credentials.
func NewClient(ctx context.Context) (*Client, error) {
	annotator, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating vision client: %w", err)
	}
	return &Client{annotator: annotator}, nil
}

// Labels runs label detection on imageData and returns the label
// descriptions in the API's confidence order.
func (c *Client) Labels(ctx context.Context, imageData []byte) ([]string, error) {
	if len(imageData) == 0 {
		return nil, ErrNoImage
	}

	img, err := vision.NewImageFromReader(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}

	annotations, err := c.annotator.DetectLabels(ctx, img, nil, maxLabels)
	if err != nil {
		return nil, fmt.Errorf("detecting labels: %w", err)
	}

	labels := make([]string, 0, len(annotations))
	for _, ann := range annotations {
		if ann.GetDescription() != "" {
			labels = append(labels, ann.GetDescription())
		}
	}
	return labels, nil
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.annotator.Close()
}
