package service

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/repository"
)

// ErrUnsupportedImage is returned for anything that is not PNG or JPEG.
var ErrUnsupportedImage = errors.New("unsupported image format")

const (
	maxImageWidth = 800
	jpegQuality   = 80
)

// UploadService persists product images under synthetic paths in the KV
// surface. The indirection exists only because there is no file-storage
// backend; a later catalog render resolves the path back to bytes.
type UploadService struct {
	kv  repository.KV
	log *zap.Logger
}

func NewUploadService(kv repository.KV, log *zap.Logger) *UploadService {
	return &UploadService{kv: kv, log: log}
}

// Store decodes the uploaded file, downscales wide images to maxImageWidth,
// re-encodes as JPEG and persists the bytes. Returns the public path.
func (s *UploadService) Store(r io.Reader, filename string) (string, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	default:
		return "", ErrUnsupportedImage
	}
	if err != nil {
		return "", ErrUnsupportedImage
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", err
	}

	name := uuid.New().String() + ".jpg"
	s.kv.Put(repository.UploadKeyPrefix+name, buf.Bytes())
	s.log.Info("image uploaded", zap.String("name", name), zap.Int("bytes", buf.Len()))
	return "/uploads/" + name, nil
}

// Open resolves a stored upload by file name.
func (s *UploadService) Open(name string) ([]byte, bool) {
	return s.kv.Get(repository.UploadKeyPrefix + name)
}
