// ABOUTME: Intent parser that turns raw menu input into a discrete selection
// ABOUTME: Tries numeric extraction first, then a bilingual keyword lexicon

package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Intent is one of the six fixed menu options.
type Intent int

const (
	None Intent = iota
	ProductSearch
	TechnicalInfo
	OrderStatus
	ReturnsWarranty
	GeneralInfo
	Other
)

// String returns the canonical name of the intent, used for template lookups.
func (i Intent) String() string {
	switch i {
	case ProductSearch:
		return "product_search"
	case TechnicalInfo:
		return "technical_info"
	case OrderStatus:
		return "order_status"
	case ReturnsWarranty:
		return "returns_warranty"
	case GeneralInfo:
		return "general_info"
	case Other:
		return "other"
	}
	return "none"
}

// Parsed is the result of parsing one input.
type Parsed struct {
	Intent     Intent
	Confidence float64
	Number     int // extracted digit, 0 if none
	Raw        string
}

// Ordered number-extraction patterns. The first match wins.
var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d+)\.?\s*$`),              // "1", "1.", "1 "
	regexp.MustCompile(`^\s*(\d+)\s*$`),              // " 1 "
	regexp.MustCompile(`(?i)opci[oó]n\s+(\d+)`),      // "opción 1"
	regexp.MustCompile(`(?i)option\s+(\d+)`),         // "option 1"
	regexp.MustCompile(`(?i)n[uú]mero\s+(\d+)`),      // "número 1"
	regexp.MustCompile(`(?i)number\s+(\d+)`),         // "number 1"
	regexp.MustCompile(`^\s*(\d+)\s*[.,-]`),          // "1," "1 -"
}

// keywordEntry pairs a lexicon keyword with its intent. The slice is ordered
// so that parsing stays deterministic when an input contains several keywords.
type keywordEntry struct {
	keyword string
	intent  Intent
}

var keywords = []keywordEntry{
	// Spanish
	{"búsqueda", ProductSearch},
	{"buscar", ProductSearch},
	{"producto", ProductSearch},
	{"repuesto", ProductSearch},
	{"parte", ProductSearch},
	{"freno", ProductSearch},
	{"pastillas", ProductSearch},
	{"técnico", TechnicalInfo},
	{"técnica", TechnicalInfo},
	{"información", TechnicalInfo},
	{"especificación", TechnicalInfo},
	{"pedido", OrderStatus},
	{"orden", OrderStatus},
	{"entrega", OrderStatus},
	{"estado", OrderStatus},
	{"devolución", ReturnsWarranty},
	{"garantía", ReturnsWarranty},
	{"retorno", ReturnsWarranty},
	{"general", GeneralInfo},
	{"tienda", GeneralInfo},
	{"empresa", GeneralInfo},
	{"otro", Other},
	{"otra", Other},
	// English
	{"search", ProductSearch},
	{"product", ProductSearch},
	{"part", ProductSearch},
	{"brake", ProductSearch},
	{"pads", ProductSearch},
	{"technical", TechnicalInfo},
	{"specification", TechnicalInfo},
	{"info", TechnicalInfo},
	{"order", OrderStatus},
	{"delivery", OrderStatus},
	{"status", OrderStatus},
	{"return", ReturnsWarranty},
	{"warranty", ReturnsWarranty},
	{"store", GeneralInfo},
	{"company", GeneralInfo},
	{"other", Other},
}

// Parser extracts a customer intent from free-form menu input.
type Parser struct{}

// NewParser returns a parser over the fixed 1..6 intent enum.
func NewParser() *Parser {
	return &Parser{}
}

// Parse maps raw text to an intent. A digit 1-6 maps directly with high
// confidence; a digit outside that range is a parse failure, not an error.
// Keyword matches fall back to medium confidence.
func (p *Parser) Parse(raw string) Parsed {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	if cleaned == "" {
		return Parsed{Raw: raw}
	}

	if n, ok := extractNumber(cleaned); ok {
		if n >= 1 && n <= 6 {
			return Parsed{Intent: Intent(n), Confidence: 0.9, Number: n, Raw: raw}
		}
		return Parsed{Confidence: 0.1, Number: n, Raw: raw}
	}

	for _, entry := range keywords {
		if strings.Contains(cleaned, entry.keyword) {
			return Parsed{Intent: entry.intent, Confidence: 0.6, Raw: raw}
		}
	}

	return Parsed{Raw: raw}
}

func extractNumber(text string) (int, bool) {
	for _, pattern := range numberPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
