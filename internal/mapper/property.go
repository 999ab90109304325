package mapper

import (
	"regexp"
	"strings"
	"time"

	"altosync/internal/domain"
	"altosync/internal/feed/alto"
)

const summaryLength = 300

// MappedProperty is a fully mapped listing plus the dimension names the
// storage layer still has to resolve to ids.
type MappedProperty struct {
	Property domain.Property

	TypeName    string
	Town        string
	County      string
	Country     string
	CurrencyISO string
	Category    CategoryResult
	Status      Status
}

// MapProperty turns a decoded feed document into the destination shape.
// It is pure: no I/O, no ids. Returns domain.ErrMissingKey when the document
// carries no upstream identifier at all.
func MapProperty(d *alto.PropertyDetail, lastChanged time.Time) (*MappedProperty, error) {
	key, err := d.NaturalKey()
	if err != nil {
		return nil, err
	}

	addr := MapAddress(d.Address, "United Kingdom")
	status := MapStatus(d.WebStatus.Code, d.WebStatus.Text)
	category := MapCategory(CategoryInput{
		Channel:        d.Database,
		Department:     firstNonEmpty(d.WebDepartment, d.Department),
		Type:           d.Type,
		StatusCode:     d.WebStatus.Code,
		StatusText:     d.WebStatus.Text,
		PriceQualifier: d.Price.Qualifier,
		PriceText:      d.Price.DisplayText,
		Commercial:     d.Commercial != nil,
		Transaction:    commercialTransaction(d),
	})

	title := addr.Title
	if title == "" {
		title = "Property " + key
	}

	p := domain.Property{
		AltoID:     key,
		Name:       title,
		Alias:      Slug(title),
		Address:    addr.Full,
		Postcode:   addr.Postcode,
		SmallDesc:  Summarise(firstNonEmpty(d.Summary, d.Description)),
		FullDesc:   d.Description,
		Price:      d.Price.Amount(),
		PriceText:  d.Price.DisplayText,
		Bedrooms:   alto.Atoi(d.Bedrooms),
		Bathrooms:  alto.Atof(d.Bathrooms),
		Rooms:      alto.Atoi(d.Receptions),
		Latitude:   strings.TrimSpace(d.Latitude),
		Longitude:  strings.TrimSpace(d.Longitude),
		Ref:        key,
		Published:  1,
		SquareFeet: alto.Atof(d.FloorArea.TotalSqft),
		LotSize:    alto.Atof(d.LandArea.TotalSqft),
		BuiltOn:    alto.Atoi(d.YearBuilt),
		IsSold:     status.State,
		StatusNote: status.Label,
		PDFSlots:   MapDocuments(d.Files),
		Created:    lastChanged,
		Modified:   lastChanged,
	}

	return &MappedProperty{
		Property:    p,
		TypeName:    MapPropertyType(d.Type),
		Town:        addr.Town,
		County:      addr.County,
		Country:     addr.Country,
		CurrencyISO: currencyISO(d.Price),
		Category:    category,
		Status:      status,
	}, nil
}

func commercialTransaction(d *alto.PropertyDetail) string {
	if d.Commercial == nil {
		return ""
	}
	return d.Commercial.Transaction
}

func currencyISO(p alto.Price) string {
	if iso := strings.ToUpper(strings.TrimSpace(p.CurrencyCode)); iso != "" {
		return iso
	}
	if iso := strings.ToUpper(strings.TrimSpace(p.Currency)); len(iso) == 3 {
		return iso
	}
	return "GBP"
}

var (
	tagPattern      = regexp.MustCompile(`<[^>]*>`)
	nonSlugPattern  = regexp.MustCompile(`[^a-z0-9]+`)
	edgeDashPattern = regexp.MustCompile(`^-+|-+$`)
)

// Slug builds a URL-safe alias from a listing title.
func Slug(s string) string {
	s = strings.ToLower(s)
	s = nonSlugPattern.ReplaceAllString(s, "-")
	return edgeDashPattern.ReplaceAllString(s, "")
}

// Summarise strips markup and truncates to the teaser length on a rune
// boundary.
func Summarise(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= summaryLength {
		return s
	}
	return strings.TrimSpace(string(runes[:summaryLength]))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
