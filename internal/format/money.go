// Package format holds presentation-side helpers: money rendering, tolerant
// amount parsing and the category color contrast rule. The store keeps all
// amounts as plain integers; formatting is applied at the edge.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money renders v with thousands grouping. In "float" mode the value is shown
// with the configured number of fraction digits; any other mode renders a
// grouped integer.
func Money(v int64, mode string, decimals int) string {
	if mode == "float" {
		if decimals < 0 {
			decimals = 0
		}
		f, _ := decimal.NewFromInt(v).Round(int32(decimals)).Float64()
		return printer.Sprintf("%."+strconv.Itoa(decimals)+"f", f)
	}
	return printer.Sprintf("%d", v)
}

// ParseAmount converts user input to an integer amount. Grouping commas and
// surrounding space are tolerated; fractional input is rounded half away from
// zero. An empty string parses to zero.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return d.Round(0).IntPart(), nil
}
