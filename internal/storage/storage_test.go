package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"vibestudio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(pngBytes(t, 4, 3))
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, "image/png", img.ContentType)
	assert.Equal(t, ".png", img.Ext())
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 3, img.Height)

	_, err = DecodeImage(nil)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)

	_, err = DecodeImage([]byte("definitely not an image"))
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestImageExt_Jpeg(t *testing.T) {
	assert.Equal(t, ".jpg", Image{Format: "jpeg"}.Ext())
	assert.Equal(t, ".webp", Image{Format: "webp"}.Ext())
}

func TestPlaceholderStore(t *testing.T) {
	url, err := PlaceholderStore{}.Save(context.Background(), Image{Data: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, "/placeholder.svg?height=600&width=600", url)
}

// fakeS3 accepts PutObject calls and records object keys.
type fakeS3 struct {
	mu   sync.Mutex
	puts map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.puts[r.URL.Path] = body
		f.mu.Unlock()
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func TestObjectStore_Save(t *testing.T) {
	fake := &fakeS3{puts: map[string][]byte{}}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	store, err := NewObjectStore(ObjectConfig{
		Endpoint:  srv.URL,
		AccessKey: "access",
		SecretKey: "secret",
		Bucket:    "post-images",
		PublicURL: "https://cdn.example/post-images/",
	})
	require.NoError(t, err)
	assert.Equal(t, "object", store.Backend())

	img, err := DecodeImage(pngBytes(t, 2, 2))
	require.NoError(t, err)

	url, err := store.Save(context.Background(), img)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example/post-images/posts/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.puts, 1)
	for path, body := range fake.puts {
		assert.True(t, strings.HasPrefix(path, "/post-images/posts/"))
		assert.NotEmpty(t, body)
	}
}
