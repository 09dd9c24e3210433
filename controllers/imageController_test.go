package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netson-backend/middlewares"
	"netson-backend/services"
)

type countingStorage struct {
	uploads int
	removes int
}

func (s *countingStorage) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (*services.UploadResult, error) {
	s.uploads++
	return &services.UploadResult{PublicId: key, URL: "http://x/" + key, SecureURL: "https://x/" + key, Bytes: size}, nil
}

func (s *countingStorage) Remove(ctx context.Context, key string) error {
	s.removes++
	return nil
}

func newUploadApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middlewares.ErrorHandler,
		BodyLimit:    20 * 1024 * 1024,
	})
	app.Post("/admin/images", UploadImage)
	return app
}

func multipartImage(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="upload.bin"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func postUpload(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/images", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestUploadImageGuards(t *testing.T) {
	app := newUploadApp()
	fake := &countingStorage{}
	services.Storage = fake
	t.Cleanup(func() { services.Storage = nil })

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.Close())

		resp, body := postUpload(t, app, &buf, w.FormDataContentType())
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Chưa chọn hình ảnh", body["message"])
	})

	t.Run("non-image content type", func(t *testing.T) {
		buf, ct := multipartImage(t, "application/pdf", []byte("%PDF-1.4"))
		resp, body := postUpload(t, app, buf, ct)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "File phải là hình ảnh", body["message"])
	})

	t.Run("oversize file", func(t *testing.T) {
		buf, ct := multipartImage(t, "image/png", make([]byte, MaxImageBytes+1))
		resp, body := postUpload(t, app, buf, ct)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Hình ảnh không được vượt quá 5MB", body["message"])
	})

	// Every rejection above must happen before any storage traffic.
	assert.Equal(t, 0, fake.uploads)
	assert.Equal(t, 0, fake.removes)
}

func TestUploadImageStorageUnavailable(t *testing.T) {
	app := newUploadApp()
	services.Storage = nil

	buf, ct := multipartImage(t, "image/png", []byte("tiny"))
	resp, body := postUpload(t, app, buf, ct)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "Dịch vụ lưu trữ chưa sẵn sàng", body["message"])
}
