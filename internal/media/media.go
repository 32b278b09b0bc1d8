// Package media stores uploaded product images and hands back public
// URLs. Uploads go to Cloudinary when configured, otherwise to local
// disk under the static uploads directory.
package media

import (
	"context"
)

// Uploader persists one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
