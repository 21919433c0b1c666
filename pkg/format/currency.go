package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Percent renders a decimal-fraction rate as a percentage string (e.g., 0.08 -> "8.00%").
func Percent(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// Years renders a whole-year term (e.g., 15 -> "15 years", 1 -> "1 year").
func Years(termYears int) string {
	if termYears == 1 {
		return "1 year"
	}
	return strconv.Itoa(termYears) + " years"
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
