package mapper

import "strings"

// Destination category ids, seeded by the migrations.
const (
	CategorySaleResidential int64 = 5
	CategoryLetResidential  int64 = 6
	CategorySaleCommercial  int64 = 7
	CategoryLetCommercial   int64 = 8
)

// CategoryInput carries every upstream signal the category chain can use.
type CategoryInput struct {
	Channel        string // <property database=""> attribute
	Department     string
	Type           string
	StatusCode     string // <web_status id=""> attribute
	StatusText     string
	PriceQualifier string
	PriceText      string
	Commercial     bool // <commercial> element present
	Transaction    string
}

type CategoryResult struct {
	ID       int64
	Rule     string
	Fallback bool // true whenever the explicit channel attribute did not decide
}

// channelCategories maps the feed's marketing-channel code to a category.
var channelCategories = map[string]int64{
	"1": CategorySaleResidential,
	"2": CategoryLetResidential,
	"3": CategorySaleCommercial,
	"4": CategoryLetCommercial,
}

var marketClassCategories = map[string]int64{
	"for sale|residential": CategorySaleResidential,
	"to let|residential":   CategoryLetResidential,
	"for sale|commercial":  CategorySaleCommercial,
	"to let|commercial":    CategoryLetCommercial,
}

type categoryRule struct {
	name  string
	match func(CategoryInput) (int64, bool)
}

// Ordered most-specific first; the fallback order is data, not control flow.
var categoryRules = []categoryRule{
	{"channel", matchChannel},
	{"market-class", matchMarketClass},
	{"heuristic", matchHeuristic},
}

// MapCategory resolves the destination category. It is total: every input,
// including garbage, lands on a category, with "for sale residential" as the
// terminal default. Callers log a warning whenever Fallback is set.
func MapCategory(in CategoryInput) CategoryResult {
	for _, rule := range categoryRules {
		if id, ok := rule.match(in); ok {
			return CategoryResult{ID: id, Rule: rule.name, Fallback: rule.name != "channel"}
		}
	}
	return CategoryResult{ID: CategorySaleResidential, Rule: "default", Fallback: true}
}

func matchChannel(in CategoryInput) (int64, bool) {
	id, ok := channelCategories[strings.TrimSpace(in.Channel)]
	return id, ok
}

func matchMarketClass(in CategoryInput) (int64, bool) {
	market := explicitMarket(in)
	if market == "" {
		return 0, false
	}
	id, ok := marketClassCategories[market+"|"+classOf(in)]
	return id, ok
}

// explicitMarket reads only unambiguous signals: the status-code range, the
// commercial transaction kind, or an exact department value.
func explicitMarket(in CategoryInput) string {
	if n, numeric := statusNumber(in.StatusCode); numeric {
		switch {
		case n >= 100 && n <= 104:
			return "to let"
		case n >= 0 && n <= 4:
			return "for sale"
		}
	}
	switch strings.ToLower(strings.TrimSpace(in.Transaction)) {
	case "rental", "let", "lease":
		return "to let"
	case "sale", "sales":
		return "for sale"
	}
	switch strings.ToLower(strings.TrimSpace(in.Department)) {
	case "lettings", "rental", "to let":
		return "to let"
	case "sales", "for sale":
		return "for sale"
	}
	return ""
}

var commercialKeywords = []string{
	"commercial", "office", "retail", "industrial", "warehouse", "shop", "restaurant", "bar",
}

func classOf(in CategoryInput) string {
	if in.Commercial {
		return "commercial"
	}
	t := strings.ToLower(in.Type)
	for _, kw := range commercialKeywords {
		if strings.Contains(t, kw) {
			return "commercial"
		}
	}
	return "residential"
}

// matchHeuristic scans free text for a market signal. It only fires when it
// finds one; otherwise the terminal default applies.
func matchHeuristic(in CategoryInput) (int64, bool) {
	status := strings.ToLower(in.StatusText)
	price := strings.ToLower(in.PriceQualifier + " " + in.PriceText)

	market := ""
	switch {
	case strings.Contains(status, "let"):
		market = "to let"
	case strings.Contains(status, "sale"):
		market = "for sale"
	case strings.Contains(price, "pcm"),
		strings.Contains(price, "pw"),
		strings.Contains(price, "per week"),
		strings.Contains(price, "per calendar month"):
		market = "to let"
	}
	if market == "" {
		return 0, false
	}
	return marketClassCategories[market+"|"+classOf(in)], true
}

func statusNumber(code string) (int, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return 0, false
	}
	n := 0
	for _, r := range code {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
