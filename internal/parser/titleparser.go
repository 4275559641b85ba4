package parser

import (
	"regexp"
	"strconv"
	"strings"

	"travel_deal_sniper/internal/models"
)

const defaultCurrency = "USD"

// TitleParser implements the Service interface
type TitleParser struct {
	// dealRegex matches titles shaped "<origin> to <destination> ... $<price>".
	// The literal "to" is case-sensitive. The destination capture is lazy up
	// to the first "$" after it, so descriptive text immediately before the
	// price marker is absorbed into the destination. That imprecision is
	// long-standing observed behavior and callers depend on it; tightening
	// the grammar here would change which titles produce deals.
	dealRegex *regexp.Regexp
}

// NewTitleParser creates a new deal title parser
func NewTitleParser() Service {
	return newTitleParser()
}

// newTitleParser creates the concrete implementation
func newTitleParser() *TitleParser {
	return &TitleParser{
		dealRegex: regexp.MustCompile(`([A-Za-z\s]+) to ([A-Za-z,\s]+).*?\$(\d+)`),
	}
}

// Parse extracts a structured deal from a raw feed entry title. The second
// return value is false when the title does not carry the expected shape or
// the captured price cannot be converted; such entries are dropped silently
// by callers, never surfaced as errors.
func (p *TitleParser) Parse(title, link string) (*models.TravelDeal, bool) {
	matches := p.dealRegex.FindStringSubmatch(title)
	if matches == nil {
		return nil, false
	}

	price, err := strconv.ParseFloat(matches[3], 64)
	if err != nil {
		return nil, false
	}

	return &models.TravelDeal{
		Title:       title,
		Link:        link,
		Price:       &price,
		Currency:    defaultCurrency,
		Departure:   strings.TrimSpace(matches[1]),
		Destination: strings.TrimSpace(matches[2]),
	}, true
}
