package mapper

import (
	"strings"

	"altosync/internal/feed/alto"
)

// AddressFields is the destination's view of a feed address.
type AddressFields struct {
	Title    string // listing display name
	Display  string // short address, shown under the title
	Full     string // complete address including town and postcode
	Town     string
	County   string
	Country  string
	Postcode string
}

// MapAddress flattens a feed address. The feed's own display element is
// preferred for the title; otherwise the short address doubles as one.
func MapAddress(a alto.DetailAddress, country string) AddressFields {
	display := joinParts(a.Name, a.Street, a.Locality)
	full := joinParts(a.Name, a.Street, a.Locality, a.Town, a.Postcode)

	title := strings.TrimSpace(a.Display)
	if title == "" {
		title = display
	}

	return AddressFields{
		Title:    title,
		Display:  display,
		Full:     full,
		Town:     strings.TrimSpace(a.Town),
		County:   strings.TrimSpace(a.County),
		Country:  strings.TrimSpace(country),
		Postcode: strings.TrimSpace(a.Postcode),
	}
}

func joinParts(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
