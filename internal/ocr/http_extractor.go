package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"smartexpire/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

// maxErrorBody bounds how much of a failed response is kept for the log.
const maxErrorBody = 512

type httpExtractor struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPExtractor posts images as the multipart field "image" to url and
// reads {"text": "..."} back.
func NewHTTPExtractor(url string, timeout time.Duration, logger zerolog.Logger) Extractor {
	return &httpExtractor{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "ocr-client").Logger(),
	}
}

type extractResponse struct {
	Text string `json:"text"`
}

func (e *httpExtractor) ExtractText(ctx context.Context, image []byte, contentType string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("image", "receipt"+extensionFor(contentType))
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, body)
	if err != nil {
		return "", fmt.Errorf("failed to create OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Error().Err(err).Str("url", e.url).Msg("OCR request failed")
		return "", model.NewExternalServiceError("OCR service unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		e.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(snippet)).
			Msg("OCR service returned an error")
		return "", model.NewExternalServiceError(fmt.Sprintf("OCR service returned %s", resp.Status), nil)
	}

	var out extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		e.logger.Error().Err(err).Msg("failed to decode OCR response")
		return "", model.NewExternalServiceError("OCR service returned an unreadable response", err)
	}

	e.logger.Info().
		Int("image_bytes", len(image)).
		Int("text_chars", len([]rune(out.Text))).
		Dur("duration", time.Since(start)).
		Msg("receipt text extracted")

	return out.Text, nil
}

func extensionFor(contentType string) string {
	if m := mimetype.Lookup(contentType); m != nil {
		return m.Extension()
	}
	return ""
}
