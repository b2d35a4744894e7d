package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Money is an amount in US cents as displayed by the shop
type Money int64

var (
	moneyPattern       = regexp.MustCompile(`\$(\d+)(?:\.(\d+))?`)
	priceFormatPattern = regexp.MustCompile(`^\$\d+\.\d{2}$`)
)

// ParseMoney extracts the first dollar amount from displayed text such as
// "Item total: $39.98". Text without a dollar amount parses to zero, so a
// missing price shows up as a mismatch in the caller's assertion.
func ParseMoney(text string) Money {
	m := moneyPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}

	dollars, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}

	frac := m[2]
	var cents int64
	switch {
	case len(frac) == 0:
	case len(frac) == 1:
		cents = int64(frac[0]-'0') * 10
	default:
		cents = int64(frac[0]-'0')*10 + int64(frac[1]-'0')
		if len(frac) > 2 && frac[2] >= '5' {
			cents++
		}
	}

	return Money(dollars*100 + cents)
}

// IsPriceFormat reports whether text is exactly a price like "$29.99"
func IsPriceFormat(text string) bool {
	return priceFormatPattern.MatchString(text)
}

// String formats the amount the way the shop renders prices
func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}

// Within reports whether m and other differ by at most tolerance
func (m Money) Within(other, tolerance Money) bool {
	d := m - other
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// SumMoney adds up displayed prices, parsing each with ParseMoney
func SumMoney(texts []string) Money {
	var total Money
	for _, t := range texts {
		total += ParseMoney(strings.TrimSpace(t))
	}
	return total
}
