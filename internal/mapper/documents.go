package mapper

import (
	"strings"

	"altosync/internal/domain"
	"altosync/internal/feed/alto"
)

// Feed file-type codes relevant to the document slots.
const (
	fileTypeFloorplan = "2"
	fileTypeBrochure  = "7"
	fileTypeEPC       = "9"
)

// Fixed slot positions. Floorplans overwrite slots 2-4 and the EPC overwrites
// slot 5 even when brochures already occupy them; the front end renders those
// positions with dedicated labels.
const (
	floorplanFirstSlot = 2
	floorplanLastSlot  = 4
	epcSlot            = 5
)

// MapDocuments distributes the feed's PDF attachments across the destination's
// fixed document slots. Brochures fill slots front to back in feed order.
func MapDocuments(files []alto.File) [domain.PDFSlotCount]string {
	var slots [domain.PDFSlotCount]string

	next := 0
	for _, f := range files {
		if f.Type != fileTypeBrochure || !isPDF(f.URL) {
			continue
		}
		if next >= len(slots) {
			break
		}
		slots[next] = f.URL
		next++
	}

	slot := floorplanFirstSlot
	for _, f := range files {
		if f.Type != fileTypeFloorplan || !isPDF(f.URL) {
			continue
		}
		if slot > floorplanLastSlot {
			break
		}
		slots[slot] = f.URL
		slot++
	}

	for _, f := range files {
		if f.Type == fileTypeEPC && isPDF(f.URL) {
			slots[epcSlot] = f.URL
			break
		}
	}

	return slots
}

func isPDF(url string) bool {
	return strings.Contains(strings.ToLower(url), ".pdf")
}
