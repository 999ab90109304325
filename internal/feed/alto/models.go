package alto

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"altosync/internal/domain"
)

// Numeric feed fields are kept as strings and parsed leniently: the feed
// routinely omits or empties elements, and absent data must map to zero.

type BranchList struct {
	XMLName  xml.Name `xml:"branches"`
	Branches []Branch `xml:"branch"`
}

type Branch struct {
	BranchID  string        `xml:"branchid"`
	Name      string        `xml:"name"`
	URL       string        `xml:"url"`
	Address   BranchAddress `xml:"address"`
	Email     string        `xml:"email"`
	Telephone string        `xml:"telephone"`
	Fax       string        `xml:"fax"`
	Website   string        `xml:"website"`
}

type BranchAddress struct {
	Line1    string `xml:"line1"`
	Line2    string `xml:"line2"`
	Line3    string `xml:"line3"`
	Town     string `xml:"town"`
	Postcode string `xml:"postcode"`
	Country  string `xml:"country"`
}

type PropertyList struct {
	XMLName    xml.Name          `xml:"properties"`
	Properties []PropertySummary `xml:"property"`
}

// PropertySummary is one entry of a branch's property list. Raw preserves the
// upstream bytes of the node so the change detector can fingerprint exactly
// what the feed sent.
type PropertySummary struct {
	PropID      string `xml:"prop_id"`
	URL         string `xml:"url"`
	LastChanged string `xml:"lastchanged"`
	Raw         []byte `xml:",innerxml"`
}

// Payload returns the canonical staged form of the summary node.
func (s PropertySummary) Payload() []byte {
	return []byte("<property>" + string(s.Raw) + "</property>")
}

type PropertyDetail struct {
	XMLName       xml.Name      `xml:"property"`
	ID            string        `xml:"id,attr"`
	Database      string        `xml:"database,attr"`
	PropID        string        `xml:"prop_id"`
	WebStatus     WebStatus     `xml:"web_status"`
	Type          string        `xml:"type"`
	Department    string        `xml:"department"`
	WebDepartment string        `xml:"web_department"`
	Bedrooms      string        `xml:"bedrooms"`
	Bathrooms     string        `xml:"bathrooms"`
	Receptions    string        `xml:"receptions"`
	Address       DetailAddress `xml:"address"`
	Price         Price         `xml:"price"`
	Summary       string        `xml:"summary"`
	Description   string        `xml:"description"`
	Tenure        string        `xml:"tenure"`
	YearBuilt     string        `xml:"year_built"`
	FloorArea     Area          `xml:"floor_area"`
	LandArea      Area          `xml:"land_area"`
	Latitude      string        `xml:"latitude"`
	Longitude     string        `xml:"longitude"`
	Files         []File        `xml:"files>file"`
	Images        []LegacyImage `xml:"images>image"`
	Commercial    *Commercial   `xml:"commercial"`
	Features      []string      `xml:"features>feature"`
}

// NaturalKey resolves the upstream identifier: the id attribute first, then
// the prop_id element the summaries carry.
func (p *PropertyDetail) NaturalKey() (string, error) {
	if key := strings.TrimSpace(p.ID); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(p.PropID); key != "" {
		return key, nil
	}
	return "", domain.ErrMissingKey
}

type WebStatus struct {
	Code string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

type DetailAddress struct {
	Name     string `xml:"name"`
	Street   string `xml:"street"`
	Locality string `xml:"locality"`
	Town     string `xml:"town"`
	County   string `xml:"county"`
	Postcode string `xml:"postcode"`
	Display  string `xml:"display"`
}

// Price tolerates both the nested form (<price><value>..</value></price>) and
// the flat one (<price>450000</price>); Raw holds the flat character data.
type Price struct {
	CurrencyCode string `xml:"currency_code,attr"`
	Value        string `xml:"value"`
	Qualifier    string `xml:"qualifier"`
	DisplayText  string `xml:"display_text"`
	Currency     string `xml:"currency"`
	Raw          string `xml:",chardata"`
}

// Amount strips non-digits from whichever price field is populated.
func (p Price) Amount() int64 {
	raw := p.Value
	if strings.TrimSpace(raw) == "" {
		raw = p.Raw
	}
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, _ := strconv.ParseInt(digits.String(), 10, 64)
	return n
}

type Area struct {
	TotalSqft string `xml:"total_sqft"`
}

type File struct {
	Type    string `xml:"type,attr"`
	URL     string `xml:"url"`
	Name    string `xml:"name"`
	Caption string `xml:"caption"`
}

type LegacyImage struct {
	URL      string `xml:"url"`
	LargeURL string `xml:"large_url"`
	Name     string `xml:"name"`
	Caption  string `xml:"caption"`
}

type Commercial struct {
	Transaction string `xml:"transaction"`
}

func ParseBranchList(data []byte) (*BranchList, error) {
	var list BranchList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: branch list: %v", domain.ErrParse, err)
	}
	return &list, nil
}

func ParsePropertyList(data []byte) (*PropertyList, error) {
	var list PropertyList
	if err := xml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: property list: %v", domain.ErrParse, err)
	}
	return &list, nil
}

func ParsePropertySummary(data []byte) (*PropertySummary, error) {
	var s PropertySummary
	if err := xml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: property summary: %v", domain.ErrParse, err)
	}
	return &s, nil
}

func ParsePropertyDetail(data []byte) (*PropertyDetail, error) {
	var d PropertyDetail
	if err := xml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%w: property detail: %v", domain.ErrParse, err)
	}
	return &d, nil
}

// Atoi is the lenient integer parse used for feed numerics.
func Atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// Atof is the lenient float parse used for feed numerics.
func Atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
