package images

import (
	"fmt"
	"regexp"
	"strings"
)

// maxFilenameLen caps the stored filename, extension included, comfortably
// under common filesystem limits.
const maxFilenameLen = 240

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_.-]+`)

// DeriveFilename builds the deterministic on-disk name for one photo:
// {propertyID}_{ordering}_{sanitised name}.{ext}, keyed by the destination row
// id so front-end consumers can derive the path from the schema alone. The
// same candidate always maps to the same name, which is what makes re-runs
// idempotent.
func DeriveFilename(propertyID int64, ordering int, name, url, contentType string) string {
	ext := extOf(name)
	if !imageExts[ext] {
		ext = extOf(urlPath(url))
	}
	if !imageExts[ext] {
		ext = extFromContentType(contentType)
	}
	if ext == "" {
		ext = "jpg"
	}
	if ext == "jpe" || ext == "jpeg" {
		ext = "jpg"
	}

	base := strings.TrimSuffix(name, "."+extOf(name))
	base = unsafeChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._-")
	if base == "" {
		base = "image"
	}

	full := fmt.Sprintf("%d_%03d_%s", propertyID, ordering, base)
	if over := len(full) + 1 + len(ext) - maxFilenameLen; over > 0 {
		full = full[:len(full)-over]
	}
	return full + "." + ext
}

func extFromContentType(ct string) string {
	ct = strings.ToLower(strings.TrimSpace(ct))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	switch ct {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return ""
}
