package images

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// Derivative subdirectories under each property's photo directory.
const (
	ThumbDir  = "thumb"
	MediumDir = "medium"
)

// Sizes holds the derivative geometry. Derivatives are cover-cropped: scaled
// to fill the box exactly and centre-cropped, so every output has the exact
// target dimensions.
type Sizes struct {
	ThumbWidth   int
	ThumbHeight  int
	MediumWidth  int
	MediumHeight int
	Quality      int
}

// resizableExts lists formats the encoder can write back. webp originals are
// served as-is without derivatives.
var resizableExts = map[string]bool{
	"jpg": true, "jpeg": true, "png": true, "gif": true,
}

// EnsureDerivatives creates the thumb and medium renditions of dir/filename
// when they are missing or older than the original. Derivative mtimes are
// pinned to the original's, so freshness is a plain mtime comparison and
// re-runs touch nothing.
func EnsureDerivatives(dir, filename string, s Sizes) error {
	if !resizableExts[extOf(filename)] {
		return nil
	}

	src := filepath.Join(dir, filename)
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat original: %w", err)
	}

	variants := []struct {
		sub  string
		w, h int
	}{
		{ThumbDir, s.ThumbWidth, s.ThumbHeight},
		{MediumDir, s.MediumWidth, s.MediumHeight},
	}

	var img image.Image
	for _, v := range variants {
		dst := filepath.Join(dir, v.sub, filename)
		if di, err := os.Stat(dst); err == nil && !di.ModTime().Before(info.ModTime()) {
			continue
		}

		if img == nil {
			img, err = imaging.Open(src, imaging.AutoOrientation(true))
			if err != nil {
				return fmt.Errorf("decode %s: %w", filename, err)
			}
		}

		if err := os.MkdirAll(filepath.Join(dir, v.sub), 0o755); err != nil {
			return fmt.Errorf("create %s dir: %w", v.sub, err)
		}

		out := imaging.Fill(img, v.w, v.h, imaging.Center, imaging.Lanczos)
		if err := imaging.Save(out, dst, imaging.JPEGQuality(s.Quality)); err != nil {
			return fmt.Errorf("encode %s/%s: %w", v.sub, filename, err)
		}
		if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
			return fmt.Errorf("pin mtime %s/%s: %w", v.sub, filename, err)
		}
	}
	return nil
}
