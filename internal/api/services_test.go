package api

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datsan-vn/datsan-go/internal/dto"
	"github.com/datsan-vn/datsan-go/internal/imaging"
)

func TestCourtService_Availability(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/courts/court-1/availability", r.URL.Path)
		assert.Equal(t, "2026-09-05", r.URL.Query().Get("date"))
		w.Write([]byte(`{"success":true,"data":{"court_id":"court-1","date":"2026-09-05","hours":[5,6,18,19]}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	svc := NewCourtService(client)

	avail, err := svc.Availability(context.Background(), "court-1", "2026-09-05")
	assert.NoError(t, err)
	assert.Equal(t, 4, avail.Len())
	assert.True(t, avail.Contains(18))
	assert.False(t, avail.Contains(7))
}

func TestReviewService_ToggleLike(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/reviews/rev-1/like", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"likes":4,"is_liked":true}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	svc := NewReviewService(client)

	resp, err := svc.ToggleLike(context.Background(), "rev-1")
	assert.NoError(t, err)
	assert.Equal(t, 4, resp.Likes)
	assert.True(t, resp.IsLiked)
}

func TestReviewService_CreateValidatesBeforeSending(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	svc := NewReviewService(client)

	_, err := svc.Create(context.Background(), "loc-1", &dto.CreateReviewRequest{Rating: 0, Comment: "ok"})
	assert.Error(t, err)
	assert.False(t, called, "invalid request must not reach the backend")
}

func TestReviewService_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reviews/images", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("image")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.png", header.Filename)

		w.Write([]byte(`{"success":true,"data":{"file_name":"abc123.png","url":"/abc123.png"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	svc := NewReviewService(client)

	resp, err := svc.UploadImage(context.Background(), "photo.png", smallPNG(t))
	assert.NoError(t, err)
	assert.Equal(t, "abc123.png", resp.FileName)
}

func TestReviewService_UploadTooLargeErrorFromBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":{"code":"UPLOAD_TOO_LARGE","message":"Maximum upload size exceeded (1MB)"}}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	svc := NewReviewService(client)

	_, err := svc.UploadImage(context.Background(), "photo.png", smallPNG(t))
	apiErr, ok := AsError(err)
	assert.True(t, ok)
	assert.True(t, apiErr.IsUploadTooLarge())
	assert.Equal(t, uploadLargeMessage, apiErr.UserMessage())
}

// smallPNG encodes a tiny image well under the compression threshold.
func smallPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < 4; i++ {
		img.Set(i, i, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	assert.LessOrEqual(t, buf.Len(), imaging.MaxUploadBytes)
	return buf.Bytes()
}
