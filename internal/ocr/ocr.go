// Package ocr extracts text from receipt images through an external service.
package ocr

import (
	"context"

	"smartexpire/internal/model"

	"github.com/gabriel-vasile/mimetype"
)

// Extractor turns an image into text.
type Extractor interface {
	// ExtractText returns the text found in image. Failures are
	// model.ErrExternalService errors.
	ExtractText(ctx context.Context, image []byte, contentType string) (string, error)
}

var supportedImages = []string{"image/jpeg", "image/png"}

// SniffImage detects the content type of data and accepts only JPEG and PNG.
func SniffImage(data []byte) (string, error) {
	detected := mimetype.Detect(data)
	for _, ct := range supportedImages {
		if detected.Is(ct) {
			return ct, nil
		}
	}
	return "", model.ErrUnsupportedImage
}

type disabledExtractor struct{}

// NewDisabledExtractor returns an Extractor for deployments without an OCR
// service. Every call fails.
func NewDisabledExtractor() Extractor {
	return disabledExtractor{}
}

func (disabledExtractor) ExtractText(context.Context, []byte, string) (string, error) {
	return "", model.NewExternalServiceError("OCR service is not configured", nil)
}
