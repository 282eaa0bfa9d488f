package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number renders n with the grouping and decimal separators of the given
// locale.
func Number(n float64, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(n))
}

// Currency renders an amount with exactly two fraction digits in the given
// locale, prefixed with the supplied symbol. The symbol is left to the
// caller because customization snippets routinely show store-specific
// symbols ("R$", "US$") rather than ISO codes.
func Currency(amount float64, symbol string, tag language.Tag) string {
	p := message.NewPrinter(tag)
	formatted := p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
	return symbol + formatted
}

// Percent renders a ratio (0..1) as a locale-aware percentage.
func Percent(ratio float64, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Percent(ratio))
}
