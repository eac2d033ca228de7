package selling

import (
	"regexp"
)

// salePattern matches "#sale <type> <design> <price>". Type and design are
// Unicode words, combining marks included so Devanagari vowel signs stay in
// the word. Separators may be any Unicode space, such as the no-break spaces
// some phone keyboards insert. The price may carry a rupee sign.
var salePattern = regexp.MustCompile(`#sale[\s\p{Z}]+([\p{L}\p{M}\p{N}_]+)[\s\p{Z}]+([\p{L}\p{M}\p{N}_]+)[\s\p{Z}]+₹?(\d+)`)

type SaleFields struct {
	SariType string
	Design   string
	Price    string
}

// ParseSale extracts the first sale command found in text.
func ParseSale(text string) (SaleFields, bool) {
	match := salePattern.FindStringSubmatch(text)
	if match == nil {
		return SaleFields{}, false
	}

	return SaleFields{
		SariType: match[1],
		Design:   match[2],
		Price:    match[3],
	}, true
}
