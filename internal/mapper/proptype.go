package mapper

import "strings"

// DefaultPropertyType is used when the feed's free-text type matches nothing.
const DefaultPropertyType = "Other"

type typeRule struct {
	substr    string
	canonical string
}

// Ordered: earlier entries win, so "bungalow" is checked before "house"
// catches "bungalow house" style values.
var typeRules = []typeRule{
	{"bungalow", "Bungalow"},
	{"house", "House"},
	{"maisonette", "Maisonette"},
	{"flat", "Flat"},
	{"apartment", "Flat"},
	{"studio", "Flat"},
	{"farm", "Farm"},
	{"land", "Land"},
	{"plot", "Land"},
	{"garage", "Garage"},
	{"parking", "Garage"},
	{"commercial", "Commercial"},
	{"office", "Commercial"},
	{"retail", "Commercial"},
	{"industrial", "Commercial"},
	{"warehouse", "Commercial"},
	{"shop", "Commercial"},
}

// MapPropertyType canonicalises the feed's free-text property type by
// case-insensitive substring match.
func MapPropertyType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return DefaultPropertyType
	}
	for _, r := range typeRules {
		if strings.Contains(t, r.substr) {
			return r.canonical
		}
	}
	return DefaultPropertyType
}
