package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"altosync/internal/domain"
)

// PhotoStore is the slice of photo persistence the pipeline needs.
type PhotoStore interface {
	CountByProperty(ctx context.Context, propertyID int64) (int, error)
	GetByPropertyAndImage(ctx context.Context, propertyID int64, image string) (*domain.Photo, error)
	Insert(ctx context.Context, photo *domain.Photo) error
	UpdateMeta(ctx context.Context, photo *domain.Photo) error
}

// Importer downloads property photos, generates derivatives and records the
// rows. Every step is idempotent, so a crashed run resumes cleanly.
type Importer struct {
	httpClient *http.Client
	photos     PhotoStore
	rootDir    string
	sizes      Sizes
	logger     *slog.Logger
}

func NewImporter(httpClient *http.Client, photos PhotoStore, rootDir string, sizes Sizes, logger *slog.Logger) *Importer {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Importer{
		httpClient: httpClient,
		photos:     photos,
		rootDir:    rootDir,
		sizes:      sizes,
		logger:     logger.With("component", "images"),
	}
}

// Sniff performs the HEAD-based content-type lookup for extension-less URLs.
func (im *Importer) Sniff(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := im.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("HEAD %s returned %d", url, resp.StatusCode)
	}
	return resp.Header.Get("Content-Type"), nil
}

// Result reports one property's image pass.
type Result struct {
	Downloaded int
	Failed     int
	Skipped    int
}

// Sync brings the property's photos up to date with the candidate list.
// Files live under a per-property directory named by the destination row id,
// the layout the CMS front end derives paths from. When the stored count
// already covers the feed's count the whole pass is skipped; otherwise only
// the tail beyond the stored count is fetched. Individual download failures
// are counted, never fatal.
func (im *Importer) Sync(ctx context.Context, propertyID int64, cands []Candidate) (Result, error) {
	var res Result
	if len(cands) == 0 {
		return res, nil
	}

	existing, err := im.photos.CountByProperty(ctx, propertyID)
	if err != nil {
		return res, fmt.Errorf("count photos: %w", err)
	}
	if existing >= len(cands) {
		res.Skipped = len(cands)
		return res, nil
	}

	dir := filepath.Join(im.rootDir, strconv.FormatInt(propertyID, 10))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create photo dir: %w", err)
	}

	for i := existing; i < len(cands); i++ {
		c := cands[i]
		filename := DeriveFilename(propertyID, i, c.Name, c.URL, c.ContentType)
		path := filepath.Join(dir, filename)

		downloaded, err := im.fetch(ctx, c.URL, path)
		if err != nil {
			im.logger.Warn("photo download failed",
				"property", propertyID, "url", c.URL, "error", err)
			res.Failed++
			continue
		}
		if downloaded {
			res.Downloaded++
		} else {
			res.Skipped++
		}

		if err := EnsureDerivatives(dir, filename, im.sizes); err != nil {
			im.logger.Warn("derivative generation failed",
				"property", propertyID, "file", filename, "error", err)
			res.Failed++
		}

		if err := im.record(ctx, propertyID, filename, c.Caption, i, existing == 0 && i == 0); err != nil {
			return res, err
		}
	}
	res.Skipped += existing
	return res, nil
}

// fetch downloads url to path unless a non-empty file is already there.
// On any failure the partial file is removed so a retry starts clean.
func (im *Importer) fetch(ctx context.Context, url, path string) (bool, error) {
	if fi, err := os.Stat(path); err == nil && fi.Size() > 0 {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	resp, err := im.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, fmt.Errorf("GET %s returned %d", url, resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return false, err
	}
	return true, nil
}

func (im *Importer) record(ctx context.Context, propertyID int64, filename, caption string, ordering int, isDefault bool) error {
	existing, err := im.photos.GetByPropertyAndImage(ctx, propertyID, filename)
	if err != nil {
		return fmt.Errorf("lookup photo row: %w", err)
	}
	if existing == nil {
		return im.photos.Insert(ctx, &domain.Photo{
			PropertyID:  propertyID,
			Image:       filename,
			Description: caption,
			Ordering:    ordering,
			IsDefault:   isDefault,
		})
	}
	existing.Description = caption
	existing.Ordering = ordering
	return im.photos.UpdateMeta(ctx, existing)
}

// HasOriginals reports whether any original photo file exists on disk for the
// property.
func (im *Importer) HasOriginals(propertyID int64) bool {
	return HasOriginals(im.rootDir, propertyID)
}

// HasOriginals reports whether any original photo file exists on disk for the
// property. Used to decide whether an unchanged listing still needs its
// images re-fetched.
func HasOriginals(rootDir string, propertyID int64) bool {
	entries, err := os.ReadDir(filepath.Join(rootDir, strconv.FormatInt(propertyID, 10)))
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() {
			return true
		}
	}
	return false
}
