package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/dto"
	"github.com/datsan-vn/datsan-go/internal/imaging"
	"github.com/datsan-vn/datsan-go/internal/telemetry"
)

// uploadImage sends one image as a multipart form. Sources over 1 MB
// are resized and re-encoded first; this is the only client-side
// pre-processing step in the whole system.
func (c *Client) uploadImage(ctx context.Context, path, field, fileName string, data []byte) (*dto.UploadResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "api.upload "+path)
	defer span.End()

	prepared, contentType, err := imaging.Prepare(data)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("upload.source_bytes", len(data)),
		attribute.Int("upload.sent_bytes", len(prepared)),
	)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileName))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(prepared); err != nil {
		return nil, fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, "no response received")
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	c.log.Debug("upload completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp.StatusCode, raw)
		span.SetStatus(codes.Error, apiErr.Message)
		if apiErr.IsUnauthorized() && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, apiErr
	}

	var out dto.UploadResponse
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
		return &out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &out, nil
}
