package aggregate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/catalog"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/collections"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/price"
)

// ExtremesMode selects how [PriceExtremes] treats invalid and zero prices.
type ExtremesMode string

const (
	// ExtremesFiltered considers valid prices only.
	ExtremesFiltered ExtremesMode = "filtered"
	// ExtremesPermissive replays the falsy-seeded fold; see the package docs.
	ExtremesPermissive ExtremesMode = "permissive"
)

// ParseExtremesMode maps a mode name to an ExtremesMode. Matching is case-insensitive.
func ParseExtremesMode(s string) (ExtremesMode, error) {
	switch m := ExtremesMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ExtremesFiltered, ExtremesPermissive:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Extremes holds the highest and lowest price. Both are invalid when no price
// qualified.
type Extremes struct {
	Highest price.Price `json:"highest" yaml:"highest"`
	Lowest  price.Price `json:"lowest" yaml:"lowest"`
}

func (e Extremes) String() string {
	return fmt.Sprintf("Highest: %s. Lowest: %s", e.Highest, e.Lowest)
}

// Record is the normalised form of a product: its name and a cost that is
// never invalid.
type Record struct {
	Name string `json:"name" yaml:"name"`
	Cost int    `json:"cost" yaml:"cost"`
}

func (r Record) String() string {
	return fmt.Sprintf("{name: %s, cost: %d}", r.Name, r.Cost)
}

// Keyed is one entry of an insertion-ordered normalised mapping.
type Keyed struct {
	Key    string `json:"key" yaml:"key"`
	Record Record `json:"record" yaml:"record"`
}

func (k Keyed) String() string {
	return fmt.Sprintf("{%s: %s}", k.Key, k.Record)
}

// ─────────────────────────────────────────────────────────────────────────────
// Operations over plain slices
// ─────────────────────────────────────────────────────────────────────────────

func from(products []catalog.Product) *collections.Collection[catalog.Product] {
	return collections.From(products)
}

func name(p catalog.Product) string { return p.Name }

func names(products []catalog.Product) *collections.Collection[string] {
	return collections.Pluck(from(products), name)
}

func amount(p catalog.Product) int { return price.Parse(p.Price).Or(0) }

func hasValidPrice(p catalog.Product, _ int) bool { return price.Parse(p.Price).IsValid() }

// ValidPriceOf parses the product's raw price.
func ValidPriceOf(p catalog.Product) price.Price { return price.Parse(p.Price) }

// NameJoin joins every product name with ", ".
func NameJoin(products []catalog.Product) string {
	return names(products).Implode(", ", func(s string) string { return s })
}

// NameConcat concatenates every product name with no separator.
func NameConcat(products []catalog.Product) string {
	return collections.Reduce(names(products), func(acc, n string, _ int) string {
		return acc + n
	}, "")
}

// LengthFilter returns, in order, the products whose name is at most maxLen
// characters long.
func LengthFilter(products []catalog.Product, maxLen int) []catalog.Product {
	return from(products).Filter(func(p catalog.Product, _ int) bool {
		return utf8.RuneCountInString(p.Name) <= maxLen
	}).All()
}

// TotalValidPrice sums the valid prices. Invalid prices are skipped. The total
// saturates at math.MaxInt.
func TotalValidPrice(products []catalog.Product) int {
	return from(products).Filter(hasValidPrice).Sum(amount)
}

// PriceExtremes returns the highest and lowest prices under mode. An unknown
// mode is treated as [ExtremesFiltered].
func PriceExtremes(products []catalog.Product, mode ExtremesMode) Extremes {
	if mode == ExtremesPermissive {
		return permissiveExtremes(products)
	}
	valid := from(products).Filter(hasValidPrice)
	var e Extremes
	if hi, ok := valid.Max(amount); ok {
		e.Highest = ValidPriceOf(hi)
	}
	if lo, ok := valid.Min(amount); ok {
		e.Lowest = ValidPriceOf(lo)
	}
	return e
}

// unset reports whether a permissive accumulator side may be overwritten
// unconditionally: it is empty, invalid or holds 0.
func unset(p price.Price) bool {
	n, ok := p.Get()
	return !ok || n == 0
}

func permissiveExtremes(products []catalog.Product) Extremes {
	return collections.Reduce(from(products), func(e Extremes, p catalog.Product, _ int) Extremes {
		cur := ValidPriceOf(p)
		n, ok := cur.Get()
		if hi, _ := e.Highest.Get(); unset(e.Highest) || (ok && n > hi) {
			e.Highest = cur
		}
		if lo, _ := e.Lowest.Get(); unset(e.Lowest) || (ok && n < lo) {
			e.Lowest = cur
		}
		return e
	}, Extremes{})
}

// Normalize maps each product name to a [Record] whose cost is the valid price
// or 0. Later products overwrite earlier ones with the same name.
func Normalize(products []catalog.Product) map[string]Record {
	records := collections.Map(from(products), func(p catalog.Product, _ int) Record {
		return Record{Name: p.Name, Cost: amount(p)}
	})
	return collections.KeyBy(records, func(r Record) string { return r.Name })
}

// NormalizeEntries is [Normalize] with the keys kept in order of first
// appearance.
func NormalizeEntries(products []catalog.Product) []Keyed {
	byName := Normalize(products)
	keys := collections.UniqueKeys(from(products), name)
	out := make([]Keyed, len(keys))
	for i, k := range keys {
		out[i] = Keyed{Key: k, Record: byName[k]}
	}
	return out
}
