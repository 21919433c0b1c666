package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 12.5, "$12.50"},
		{"Thousands", 1234.56, "$1,234.56"},
		{"Millions", 2500000.0, "$2,500,000.00"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Zero", 0.0, "$0.00"},
		{"Exactly one thousand", 1000.0, "$1,000.00"},
		{"Monthly payment", 18344.11, "$18,344.11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Thousands", 1234.56, "1,234.56"},
		{"Negative", -987654.32, "-987,654.32"},
		{"Under one thousand", 999.99, "999.99"},
		{"Zero", 0.0, "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NumericCurrency(tt.amount)
			if result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected string
	}{
		{"Mortgage rate", 0.08, "8.00%"},
		{"Investment return", 0.40, "40.00%"},
		{"Fractional percent", 0.0825, "8.25%"},
		{"Zero", 0.0, "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Percent(tt.rate)
			if result != tt.expected {
				t.Errorf("Percent(%v) = %q, expected %q", tt.rate, result, tt.expected)
			}
		})
	}
}

func TestYears(t *testing.T) {
	tests := []struct {
		name      string
		termYears int
		expected  string
	}{
		{"Single year", 1, "1 year"},
		{"Multiple years", 15, "15 years"},
		{"Baseline term", 30, "30 years"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Years(tt.termYears)
			if result != tt.expected {
				t.Errorf("Years(%d) = %q, expected %q", tt.termYears, result, tt.expected)
			}
		})
	}
}
