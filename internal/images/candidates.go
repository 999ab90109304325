package images

import (
	"context"
	"net/url"
	"path"
	"strings"

	"altosync/internal/feed/alto"
)

// Sniffer reports the Content-Type of a URL, typically via a HEAD request.
// It is consulted only for URLs whose name and path carry no usable extension.
type Sniffer func(ctx context.Context, url string) (string, error)

// Candidate is one downloadable photo for a property, in feed order.
type Candidate struct {
	URL         string
	Name        string
	Caption     string
	ContentType string // populated only when sniffing was needed
}

// Feed file-type codes that may denote a photo. Older feeds leave the
// attribute empty or use "0"; newer ones use "1" or a word.
var photoFileTypes = map[string]bool{
	"":      true,
	"0":     true,
	"1":     true,
	"image": true,
	"photo": true,
}

var imageExts = map[string]bool{
	"jpg": true, "jpeg": true, "jpe": true, "png": true, "gif": true, "webp": true,
}

// Candidates selects the property's photos from the files block, falling back
// to the legacy images block when no file qualifies.
func Candidates(ctx context.Context, d *alto.PropertyDetail, sniff Sniffer) []Candidate {
	var out []Candidate
	for _, f := range d.Files {
		if !photoFileTypes[strings.ToLower(strings.TrimSpace(f.Type))] {
			continue
		}
		c, ok := classify(ctx, f, sniff)
		if ok {
			out = append(out, c)
		}
	}
	if len(out) > 0 {
		return out
	}

	for _, img := range d.Images {
		u := img.LargeURL
		if strings.TrimSpace(u) == "" {
			u = img.URL
		}
		if strings.TrimSpace(u) == "" {
			continue
		}
		out = append(out, Candidate{URL: u, Name: img.Name, Caption: img.Caption})
	}
	return out
}

func classify(ctx context.Context, f alto.File, sniff Sniffer) (Candidate, bool) {
	if strings.TrimSpace(f.URL) == "" {
		return Candidate{}, false
	}
	c := Candidate{URL: f.URL, Name: f.Name, Caption: f.Caption}

	if imageExts[extOf(f.Name)] || imageExts[extOf(urlPath(f.URL))] {
		return c, true
	}

	if sniff == nil {
		return Candidate{}, false
	}
	ct, err := sniff(ctx, f.URL)
	if err != nil || !strings.HasPrefix(ct, "image/") {
		return Candidate{}, false
	}
	c.ContentType = ct
	return c, true
}

func extOf(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	return strings.ToLower(ext)
}

func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
