package pipeline

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/amitkr54/svgtemplate/internal/canvas"
	"github.com/amitkr54/svgtemplate/internal/store"
)

// thumbJPEGQuality is the encode quality for generated thumbnails.
const thumbJPEGQuality = 85

// ThumbnailOptions holds options for a thumbnail run.
type ThumbnailOptions struct {
	StorePath string
	AssetDir  string
}

// Thumbnails regenerates preview thumbnails, bounded by each template's
// canonical resolution so thumbnails of the same aspect ratio come out at
// the same size. Previews that are missing or fail to decode are skipped
// with a warning. Returns the number of thumbnails written.
func Thumbnails(opts ThumbnailOptions) (int, error) {
	templates, err := store.Load(opts.StorePath)
	if err != nil {
		return 0, err
	}

	written := 0
	for i := range templates {
		t := &templates[i]
		if t.PreviewPath == "" {
			continue
		}
		if t.Width <= 0 || t.Height <= 0 {
			log.Printf("warning: template %q has no dimensions, skipping thumbnail", t.ID)
			continue
		}

		src := filepath.Join(opts.AssetDir, t.PreviewPath)
		img, err := imaging.Open(src)
		if err != nil {
			log.Printf("warning: template %q: %v, skipping thumbnail", t.ID, err)
			continue
		}

		res := canvas.TargetResolution(t.Width, t.Height)
		thumb := imaging.Fit(img, res.Width, res.Height, imaging.Lanczos)
		dst := thumbPath(src)
		if err := imaging.Save(thumb, dst, imaging.JPEGQuality(thumbJPEGQuality)); err != nil {
			log.Printf("warning: template %q: %v, skipping thumbnail", t.ID, err)
			continue
		}
		written++
	}
	return written, nil
}

// thumbPath derives the thumbnail path next to the preview file.
func thumbPath(preview string) string {
	return strings.TrimSuffix(preview, filepath.Ext(preview)) + "_thumb.jpg"
}
