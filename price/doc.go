// Package price parses the loosely typed price values found in product
// listings into an explicit valid-or-invalid result.
//
// A raw price is either a number or a piece of text:
//
//	price.Number(6)   // already an integer
//	price.Text("8")   // integer written as text
//	price.Text(" ")   // blank, invalid
//	price.Text("")    // empty, invalid
//
// [Parse] converts a [Raw] into a [Price]. Text is read with leading-digit
// semantics: leading whitespace is skipped, the longest run of ASCII digits is
// taken and anything after it is ignored. A value with no digits, a leading
// sign, or a negative number is invalid.
//
// Callers decide what an invalid price means for them:
//
//	p := price.Parse(price.Text(" "))
//	if n, ok := p.Get(); ok {
//	    total += n
//	}
//	cost := p.Or(0)
package price
