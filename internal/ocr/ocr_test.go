package ocr

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartexpire/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func TestSniffImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "png", data: pngBytes, want: "image/png"},
		{name: "jpeg", data: jpegBytes, want: "image/jpeg"},
		{name: "text", data: []byte("just a receipt, honest"), wantErr: true},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00"), wantErr: true},
		{name: "empty", data: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := SniffImage(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrUnsupportedImage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ct)
		})
	}
}

func TestHTTPExtractor_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, pngBytes, data)
		assert.Equal(t, "receipt.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "MILK 2.49\nEGGS 3.10"}`))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(server.URL, 5*time.Second, zerolog.Nop())

	text, err := extractor.ExtractText(context.Background(), pngBytes, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "MILK 2.49\nEGGS 3.10", text)
}

func TestHTTPExtractor_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model crashed", http.StatusInternalServerError)
			},
		},
		{
			name: "bad request",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>not json</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			extractor := NewHTTPExtractor(server.URL, 5*time.Second, zerolog.Nop())

			text, err := extractor.ExtractText(context.Background(), jpegBytes, "image/jpeg")
			assert.ErrorIs(t, err, model.ErrExternalService)
			assert.Empty(t, text)
		})
	}
}

func TestHTTPExtractor_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	extractor := NewHTTPExtractor(url, time.Second, zerolog.Nop())

	_, err := extractor.ExtractText(context.Background(), pngBytes, "image/png")
	assert.ErrorIs(t, err, model.ErrExternalService)
}

func TestHTTPExtractor_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	extractor := NewHTTPExtractor(server.URL, 50*time.Millisecond, zerolog.Nop())

	_, err := extractor.ExtractText(context.Background(), pngBytes, "image/png")
	assert.ErrorIs(t, err, model.ErrExternalService)
}

func TestHTTPExtractor_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	extractor := NewHTTPExtractor(server.URL, 5*time.Second, zerolog.Nop())

	_, err := extractor.ExtractText(ctx, pngBytes, "image/png")
	assert.ErrorIs(t, err, model.ErrExternalService)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDisabledExtractor(t *testing.T) {
	_, err := NewDisabledExtractor().ExtractText(context.Background(), pngBytes, "image/png")
	assert.ErrorIs(t, err, model.ErrExternalService)
}
