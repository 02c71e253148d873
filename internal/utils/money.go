package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCents renders an amount the way the kiosk prints it, e.g. "2105 cents".
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d cents", cents)
}

// FormatDollars renders cents with a thousand separator, e.g. "$1,263.00".
func FormatDollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, formatThousand(cents/100), cents%100)
}

func formatThousand(n int64) string {
	if n == 0 {
		return "0"
	}
	str := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, c := range str {
		if i != 0 && (len(str)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(c)
	}
	return out.String()
}
