// Package pdf handles the two PDF concerns of this repository: rasterizing
// an uploaded PDF's first page to PNG for the vision pipeline, and laying
// out generated agreement text as a paginated PDF document.
package pdf

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// Converter renders the first page of a PDF as a PNG image.
// Only the first page is kept: uploads are normalized to a single
// representable image before storage.
type Converter interface {
	FirstPagePNG(pdfBytes []byte) ([]byte, error)
}

// Fitz implements Converter with the MuPDF renderer.
type Fitz struct{}

// FirstPagePNG rasterizes page 0 of pdfBytes and encodes it as PNG.
func (Fitz) FirstPagePNG(pdfBytes []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering first page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
