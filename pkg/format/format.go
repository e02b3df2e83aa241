package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Korean)

// Currency renders an amount with locale digit grouping and a currency
// suffix: "1,500,000원" for KRW, "1,500,000 USD" otherwise. Whole
// amounts render without a fraction.
func Currency(amount float64, currency string) string {
	var rendered string
	if amount == math.Trunc(amount) {
		rendered = printer.Sprintf("%v", number.Decimal(int64(amount)))
	} else {
		rendered = printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
	}

	switch strings.ToUpper(currency) {
	case "", "KRW":
		return rendered + "원"
	default:
		return rendered + " " + strings.ToUpper(currency)
	}
}

// ParseAmount parses user-entered money text, tolerating digit grouping
// and a KRW suffix. NaN and infinities are rejected.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimSuffix(cleaned, "원")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, fmt.Errorf("empty amount")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}

// Date renders a date in Korean convention: "2026년 3월 1일".
func Date(t time.Time) string {
	return fmt.Sprintf("%d년 %d월 %d일", t.Year(), int(t.Month()), t.Day())
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
}

// ParseDate parses wizard date input leniently. Callers treat an error
// as "date undecided" and must never abort evaluation.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}
