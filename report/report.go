// Package report runs every collection example over a set of fixtures, in a
// fixed order, and renders the results.
//
// Each example produces one or more [Entry] values. An entry carries a stable
// step key, the line printed in text mode and the structured value used by
// the JSON and YAML renderers.
package report

import (
	"fmt"
	"strconv"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/aggregate"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/catalog"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/collections"
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/roster"
)

// Fixtures are the three input lists.
type Fixtures struct {
	Provinces []string
	Names     []string
	Products  []catalog.Product
}

// DefaultFixtures returns the catalog fixtures.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Provinces: catalog.Provinces(),
		Names:     catalog.Names(),
		Products:  catalog.Products(),
	}
}

// Options tune the product examples.
type Options struct {
	MaxNameLen   int
	ExtremesMode aggregate.ExtremesMode
}

// DefaultOptions returns a name length limit of 5 and filtered extremes.
func DefaultOptions() Options {
	return Options{MaxNameLen: 5, ExtremesMode: aggregate.ExtremesFiltered}
}

// Entry is one output line.
type Entry struct {
	Step  string `json:"step" yaml:"step"`
	Text  string `json:"-" yaml:"-"`
	Value any    `json:"value" yaml:"value"`
}

// list renders items as "[a, b, c]" using each item's default format.
func list[T any](items []T) string {
	return "[" + collections.From(items).Implode(", ", func(v T) string { return fmt.Sprint(v) }) + "]"
}

func entry(step string, v any) Entry {
	return Entry{Step: step, Text: fmt.Sprint(v), Value: v}
}

func listEntry[T any](step string, items []T) Entry {
	return Entry{Step: step, Text: list(items), Value: items}
}

func eachEntry(step string, items []string) []Entry {
	out := make([]Entry, 0, len(items))
	collections.From(items).Each(func(s string, _ int) {
		out = append(out, entry(step, s))
	})
	return out
}

// Run executes every example over fx in order. fx is not modified; the sorted
// province list is passed explicitly to the examples that follow the sort.
func Run(fx Fixtures, opts Options) []Entry {
	var out []Entry

	out = append(out, eachEntry("provinces.each", fx.Provinces)...)
	out = append(out, eachEntry("names.each", fx.Names)...)
	out = append(out, eachEntry("names.with_province", roster.Pair(fx.Names, fx.Provinces, roster.NoProvince))...)
	out = append(out,
		listEntry("provinces.upper", roster.Upper(fx.Provinces)),
		listEntry("names.lengths", roster.Lengths(fx.Names)),
	)

	sorted := roster.Sorted(fx.Provinces)
	assigned := roster.Assign(fx.Names, sorted, roster.NoProvince)
	out = append(out,
		listEntry("provinces.sorted", sorted),
		entry("provinces.without_cape", roster.CountWithout(sorted, "Cape")),
		listEntry("names.has_s", roster.HasEach(fx.Names, "S")),
		entry("names.any_s", roster.HasAny(fx.Names, "S")),
		Entry{
			Step:  "names.province_map",
			Text:  "{" + collections.From(assigned).Implode(", ", roster.Assignment.String) + "}",
			Value: assigned,
		},
	)

	agg := aggregate.New(fx.Products)
	total := agg.TotalValidPrice()
	out = append(out,
		entry("products.names", agg.NameJoin()),
		listEntry("products.short", agg.LengthFilter(opts.MaxNameLen)),
		Entry{Step: "products.total", Text: "Total Price: " + strconv.Itoa(total), Value: total},
		entry("products.concat", agg.NameConcat()),
		entry("products.extremes", agg.PriceExtremes(opts.ExtremesMode)),
		listEntry("products.normalized", agg.NormalizeEntries()),
	)
	return out
}
