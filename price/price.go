package price

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Raw is an unparsed price as it appears in a listing: either a number or text.
// The zero value is empty text, which parses as invalid.
type Raw struct {
	num   int
	text  string
	isNum bool
}

// Number returns a numeric raw price.
func Number(n int) Raw { return Raw{num: n, isNum: true} }

// Text returns a textual raw price.
func Text(s string) Raw { return Raw{text: s} }

// IsText reports whether r holds text rather than a number.
func (r Raw) IsText() bool { return !r.isNum }

// String renders numbers bare and text quoted, so "2" and 2 stay distinguishable.
func (r Raw) String() string {
	if r.IsText() {
		return strconv.Quote(r.text)
	}
	return strconv.Itoa(r.num)
}

// MarshalJSON encodes numbers as JSON numbers and text as JSON strings.
func (r Raw) MarshalJSON() ([]byte, error) {
	if r.IsText() {
		return json.Marshal(r.text)
	}
	return json.Marshal(r.num)
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (r Raw) MarshalYAML() (any, error) {
	if r.IsText() {
		return r.text, nil
	}
	return r.num, nil
}

// Price is the result of parsing a [Raw]: an integer amount or invalid.
// The zero value is invalid.
type Price struct {
	amount int
	valid  bool
}

// Valid wraps a parsed amount.
func Valid(n int) Price { return Price{amount: n, valid: true} }

// Invalid returns the invalid price.
func Invalid() Price { return Price{} }

// Get returns the amount and whether the price is valid.
func (p Price) Get() (int, bool) { return p.amount, p.valid }

// IsValid reports whether p holds an amount.
func (p Price) IsValid() bool { return p.valid }

// Or returns the amount, or fallback when p is invalid.
func (p Price) Or(fallback int) int {
	if p.valid {
		return p.amount
	}
	return fallback
}

func (p Price) String() string {
	if !p.valid {
		return "invalid"
	}
	return strconv.Itoa(p.amount)
}

// MarshalJSON encodes an invalid price as null.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.amount)
}

// MarshalYAML encodes an invalid price as null.
func (p Price) MarshalYAML() (any, error) {
	if !p.valid {
		return nil, nil
	}
	return p.amount, nil
}

// Parse converts r into a Price.
//
// Numbers pass through unless negative. Text is read with leading-digit
// semantics; see the package documentation.
func Parse(r Raw) Price {
	if !r.IsText() {
		if r.num < 0 {
			return Invalid()
		}
		return Valid(r.num)
	}
	return parseText(r.text)
}

func parseText(s string) Price {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return Invalid()
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		// only overflow can fail here
		return Invalid()
	}
	return Valid(n)
}
