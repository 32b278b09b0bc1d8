package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// maxWidth caps stored image width; larger uploads are scaled down
// preserving aspect ratio before being re-encoded as JPEG.
const maxWidth = 1200

// LocalUploader writes images to dir and serves them under urlPrefix
// via the static file server.
type LocalUploader struct {
	dir       string
	urlPrefix string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, urlPrefix: "/uploads/"}, nil
}

func (u *LocalUploader) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return "", err
	}

	if b := img.Bounds(); b.Dx() > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}

	// UUID filenames avoid collisions and drop whatever the client
	// called the file.
	name := uuid.New().String() + ".jpg"
	out, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, img, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return u.urlPrefix + name, nil
}

func decodeImage(data []byte, filename string) (image.Image, error) {
	r := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		img, err := png.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decode png: %w", err)
		}
		return img, nil
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decode jpeg: %w", err)
		}
		return img, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", filepath.Ext(filename))
	}
}
