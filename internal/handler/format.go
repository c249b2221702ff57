package handler

import (
	"fmt"
	"strings"
)

var currencySymbols = map[string]string{
	"eur": "€",
	"usd": "$",
	"gbp": "£",
}

// formatBigNumber renders a monetary amount the way the dashboard shows it:
// billions as "Mrd.", millions as "Mio.", everything else with thousands
// separators.
func formatBigNumber(value float64, currency string) string {
	symbol, ok := currencySymbols[strings.ToLower(currency)]
	if !ok {
		symbol = strings.ToUpper(currency)
	}

	switch {
	case value >= 1_000_000_000:
		return fmt.Sprintf("%s %.2f Mrd.", symbol, value/1_000_000_000)
	case value >= 1_000_000:
		return fmt.Sprintf("%s %.2f Mio.", symbol, value/1_000_000)
	default:
		return fmt.Sprintf("%s %s", symbol, groupThousands(value))
	}
}

// groupThousands formats with two decimals and comma-separated groups,
// e.g. 1234567.5 -> "1,234,567.50".
func groupThousands(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
