package mapper

// Destination availability states. The CMS keeps a three-valued flag next to
// the free-text label: 0 listed normally, 1 concluded (hidden from search),
// 3 agreed-but-not-concluded (listed with a banner).
const (
	StatusCurrent   = 0
	StatusConcluded = 1
	StatusAgreed    = 3
)

type Status struct {
	State int
	Label string
}

// statusTable maps the feed's web-status codes. Sales codes occupy 0-4,
// lettings codes 100-104.
var statusTable = map[int]Status{
	0:   {StatusCurrent, "Available"},
	1:   {StatusAgreed, "Under Offer"},
	2:   {StatusConcluded, "Sold"},
	3:   {StatusAgreed, "Sold Subject to Contract"},
	4:   {StatusConcluded, "Completed"},
	100: {StatusCurrent, "To Let"},
	101: {StatusAgreed, "Let Agreed"},
	102: {StatusConcluded, "Let"},
	103: {StatusCurrent, "Withdrawn"},
	104: {StatusConcluded, "Completed (Lettings)"},
}

// MapStatus resolves the feed status. The id attribute wins; the element text
// is consulted only when the attribute is absent or non-numeric. Unknown codes
// fall through to a listed "Current" so bad data never hides a property.
func MapStatus(code, text string) Status {
	n, ok := statusNumber(code)
	if !ok {
		n, ok = statusNumber(text)
	}
	if ok {
		if s, known := statusTable[n]; known {
			return s
		}
	}
	return Status{StatusCurrent, "Current"}
}
