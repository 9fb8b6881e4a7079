package preview

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/filedrop/service/internal/storage"
)

// thumbSize is the square edge length of generated thumbnails.
const thumbSize = 320

// thumbnailExts are the image formats imaging can decode without extra
// codec support.
var thumbnailExts = extSet("png", "jpg", "jpeg", "gif", "bmp")

// CanThumbnail reports whether a thumbnail can be generated for the stored
// filename.
func CanThumbnail(storedName string) bool {
	return thumbnailExts(extOf(storedName))
}

// Thumbnailer generates square JPEG thumbnails for stored images and caches
// them on local disk. Regenerating on cache miss is always safe because
// stored blobs are immutable.
type Thumbnailer struct {
	store    storage.Storage
	cacheDir string
}

// NewThumbnailer creates a Thumbnailer caching generated thumbnails under
// cacheDir.
func NewThumbnailer(store storage.Storage, cacheDir string) (*Thumbnailer, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create thumbnail cache dir: %w", err)
	}
	return &Thumbnailer{store: store, cacheDir: cacheDir}, nil
}

// Render writes the cached thumbnail for f to w, generating it on a cache
// miss. The caller must have checked CanThumbnail first.
func (t *Thumbnailer) Render(ctx context.Context, w io.Writer, f File) error {
	cachePath := filepath.Join(t.cacheDir, f.ID+".jpg")

	if _, err := os.Stat(cachePath); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat thumbnail cache: %w", err)
		}
		if err := t.generate(ctx, f, cachePath); err != nil {
			return err
		}
	}

	cached, err := os.Open(cachePath)
	if err != nil {
		return fmt.Errorf("open cached thumbnail: %w", err)
	}
	defer cached.Close()

	if _, err := io.Copy(w, cached); err != nil {
		return fmt.Errorf("send thumbnail: %w", err)
	}
	return nil
}

func (t *Thumbnailer) generate(ctx context.Context, f File, cachePath string) error {
	rc, err := t.store.Open(ctx, f.StoredName)
	if err != nil {
		return fmt.Errorf("open source image: %w", err)
	}
	defer rc.Close()

	src, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode source image: %w", err)
	}

	dst := imaging.Fill(src, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)

	if err := imaging.Save(dst, cachePath); err != nil {
		return fmt.Errorf("save thumbnail: %w", err)
	}
	return nil
}
