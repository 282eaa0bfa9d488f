// Package mask applies progressive input masks to digit-based form fields,
// the way a page script reformats a phone or date field on every keystroke.
//
// A mask pattern consumes one input digit per '#' and inserts every other
// character literally. Formatting stops when either the pattern or the
// digits run out, so partially typed values render naturally:
//
//	mask.Apply(mask.Phone, "11987")  // "(11) 987"
//	mask.Apply(mask.Date, "0712")    // "07/12"
//
// Non-digit characters in the input are discarded before masking, which
// makes Apply idempotent: feeding a masked value back in yields the same
// result.
package mask

import "strings"

// Canned patterns for the masks the customization snippets ship with.
const (
	Phone      = "(##) #####-####"
	PhoneIntl  = "+## (##) #####-####"
	Date       = "##/##/####"
	CreditCard = "#### #### #### ####"
	ZIP        = "#####-###"
	CPF        = "###.###.###-##"
)

// Apply formats input against pattern. Extra digits beyond the pattern's
// capacity are dropped.
func Apply(pattern, input string) string {
	digits := Unmask(input)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(pattern))

	i := 0
	for _, r := range pattern {
		if r == '#' {
			if i >= len(digits) {
				break
			}
			b.WriteByte(digits[i])
			i++
			continue
		}

		// Literals are only emitted while digits remain to follow them.
		if i >= len(digits) {
			break
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Unmask strips everything but digits.
func Unmask(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if input[i] >= '0' && input[i] <= '9' {
			b.WriteByte(input[i])
		}
	}
	return b.String()
}

// Complete reports whether input fills every digit slot of pattern.
func Complete(pattern, input string) bool {
	return len(Unmask(input)) >= strings.Count(pattern, "#")
}
