package service

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/repository"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestUploads_StoreAndOpen(t *testing.T) {
	svc := NewUploadService(repository.NewMemoryKV(), zap.NewNop())

	path, err := svc.Store(encodePNG(t, 40, 40), "design.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".jpg"))

	name := strings.TrimPrefix(path, "/uploads/")
	data, ok := svc.Open(name)
	require.True(t, ok)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestUploads_WideImagesDownscaled(t *testing.T) {
	svc := NewUploadService(repository.NewMemoryKV(), zap.NewNop())

	path, err := svc.Store(encodePNG(t, 1600, 400), "banner.png")
	require.NoError(t, err)

	data, ok := svc.Open(strings.TrimPrefix(path, "/uploads/"))
	require.True(t, ok)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy()) // aspect ratio preserved
}

func TestUploads_RejectsUnsupported(t *testing.T) {
	svc := NewUploadService(repository.NewMemoryKV(), zap.NewNop())

	_, err := svc.Store(strings.NewReader("GIF89a"), "anim.gif")
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	_, err = svc.Store(strings.NewReader("not a real png"), "fake.png")
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestUploads_OpenUnknown(t *testing.T) {
	svc := NewUploadService(repository.NewMemoryKV(), zap.NewNop())
	_, ok := svc.Open("nope.jpg")
	assert.False(t, ok)
}
