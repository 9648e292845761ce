package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency renders an EUR amount for the given BCP 47 language tag.
// Example: Currency(249, "es") => "249,00 €"
//
// When the tag does not parse, or the amount is not a real number, it falls
// back to a plain euro symbol with two decimals so a price always renders.
func Currency(amount float64, lang string) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fallbackCurrency(amount)
	}
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return fallbackCurrency(amount)
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(currency.EUR.Amount(amount)))
}

func fallbackCurrency(amount float64) string {
	return "€" + strconv.FormatFloat(amount, 'f', 2, 64)
}

// Date formats time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	switch strings.ToLower(lang) {
	case "es":
		return t.Format("02/01/2006")
	default:
		return t.Format("Jan 2, 2006")
	}
}
