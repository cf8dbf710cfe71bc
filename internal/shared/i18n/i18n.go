// Package i18n renders user-facing labels in Russian using CLDR plural rules.
package i18n

import (
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

const (
	keyYears  = "%d years"
	keyMonths = "%d months"
	keyDays   = "%d days"

	// EmptyPlaceholder is shown for a value with nothing to display.
	EmptyPlaceholder = "—"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.Russian))
	mustSet(b, keyYears, "%d год", "%d года", "%d лет")
	mustSet(b, keyMonths, "%d месяц", "%d месяца", "%d месяцев")
	mustSet(b, keyDays, "%d день", "%d дня", "%d дней")
	return message.NewPrinter(language.Russian, message.Catalog(b))
}

func mustSet(b *catalog.Builder, key, one, few, many string) {
	err := b.Set(language.Russian, key, plural.Selectf(1, "%d",
		plural.One, one,
		plural.Few, few,
		plural.Many, many,
		plural.Other, few,
	))
	if err != nil {
		panic(err)
	}
}

// Years renders n with the agreeing form of "год".
func Years(n int) string {
	return printer.Sprintf(keyYears, n)
}

// Months renders n with the agreeing form of "месяц".
func Months(n int) string {
	return printer.Sprintf(keyMonths, n)
}

// Days renders n with the agreeing form of "день".
func Days(n int) string {
	return printer.Sprintf(keyDays, n)
}

// DurationLabel joins the non-zero components, e.g. "1 год, 6 месяцев".
func DurationLabel(years, months, days int) string {
	parts := make([]string, 0, 3)
	if years != 0 {
		parts = append(parts, Years(years))
	}
	if months != 0 {
		parts = append(parts, Months(months))
	}
	if days != 0 {
		parts = append(parts, Days(days))
	}
	if len(parts) == 0 {
		return EmptyPlaceholder
	}
	return strings.Join(parts, ", ")
}

// AmountLabel formats a money amount with Russian digit grouping and the
// rouble sign, e.g. "1 500 000 ₽".
func AmountLabel(amount float64) string {
	return printer.Sprintf("%v ₽", number.Decimal(amount, number.MaxFractionDigits(2)))
}
