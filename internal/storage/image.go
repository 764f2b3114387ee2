// Package storage persists uploaded post images.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder

	"vibestudio/internal/models"

	_ "golang.org/x/image/webp" // register decoder
)

// PlaceholderURL is stored for every post while real uploads are disabled.
const PlaceholderURL = "/placeholder.svg?height=600&width=600"

// Image is a validated upload.
type Image struct {
	Data        []byte
	Format      string
	ContentType string
	Width       int
	Height      int
}

// Ext is the file extension for the image format.
func (i Image) Ext() string {
	if i.Format == "jpeg" {
		return ".jpg"
	}
	return "." + i.Format
}

// DecodeImage checks that data is a PNG, JPEG, GIF or WebP image.
func DecodeImage(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, models.NewValidationError("image is required")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, models.NewValidationError(fmt.Sprintf("unsupported image: %v", err))
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return Image{}, models.NewValidationError("image has no pixels")
	}
	return Image{
		Data:        data,
		Format:      format,
		ContentType: "image/" + format,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}

// ImageStore saves an image and returns the URL posts should reference.
type ImageStore interface {
	Save(ctx context.Context, img Image) (string, error)
	Backend() string
}

// PlaceholderStore discards uploads and always returns PlaceholderURL.
type PlaceholderStore struct{}

func (PlaceholderStore) Save(context.Context, Image) (string, error) {
	return PlaceholderURL, nil
}

func (PlaceholderStore) Backend() string { return "placeholder" }
