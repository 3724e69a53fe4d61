// Package roster holds the province and name examples: pairing names with
// provinces, case and length transforms, sorting, substring checks and the
// name-to-province assignment.
//
// Every function takes its inputs explicitly and returns new slices. Nothing
// here sorts or edits a caller's slice in place.
package roster

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/collections"
)

// NoProvince is the fallback used when a name has no province at its index.
const NoProvince = "No Province Assigned"

// Assignment links a name to a province.
type Assignment struct {
	Name     string `json:"name" yaml:"name"`
	Province string `json:"province" yaml:"province"`
}

func (a Assignment) String() string { return a.Name + ": " + a.Province }

func provinceAt(provinces *collections.Collection[string], i int, fallback string) string {
	if p, ok := provinces.Get(i); ok && p != "" {
		return p
	}
	return fallback
}

// Pair renders each name with the province at the same index as
// "Name (Province)". Names past the end of provinces get fallback.
func Pair(names, provinces []string, fallback string) []string {
	ps := collections.From(provinces)
	return collections.Map(collections.From(names), func(n string, i int) string {
		return fmt.Sprintf("%s (%s)", n, provinceAt(ps, i, fallback))
	}).All()
}

// Upper returns every item in upper case using Unicode case mapping.
func Upper(items []string) []string {
	upper := cases.Upper(language.Und)
	return collections.Map(collections.From(items), func(s string, _ int) string {
		return upper.String(s)
	}).All()
}

// Lengths returns the character count of each item.
func Lengths(items []string) []int {
	return collections.Map(collections.From(items), func(s string, _ int) int {
		return utf8.RuneCountInString(s)
	}).All()
}

// Sorted returns a sorted copy of items in byte-wise order.
func Sorted(items []string) []string {
	return collections.From(items).Sort(func(a, b string) bool { return a < b }).All()
}

// CountWithout counts the items that do not contain substr.
func CountWithout(items []string, substr string) int {
	return collections.From(items).Reject(func(s string, _ int) bool {
		return strings.Contains(s, substr)
	}).Count()
}

// HasEach reports, per item, whether it contains substr. Matching is case-sensitive.
func HasEach(items []string, substr string) []bool {
	return collections.Map(collections.From(items), func(s string, _ int) bool {
		return strings.Contains(s, substr)
	}).All()
}

// HasAny reports whether at least one item contains substr.
func HasAny(items []string, substr string) bool {
	return collections.From(items).Contains(func(s string) bool {
		return strings.Contains(s, substr)
	})
}

// Assign pairs each name with the province at the same index, using fallback
// when there is none. The result is ordered by first appearance of each name;
// a repeated name keeps its first position but takes the later province.
func Assign(names, provinces []string, fallback string) []Assignment {
	ps := collections.From(provinces)
	all := collections.Map(collections.From(names), func(n string, i int) Assignment {
		return Assignment{Name: n, Province: provinceAt(ps, i, fallback)}
	})
	byName := collections.KeyBy(all, func(a Assignment) string { return a.Name })
	keys := collections.UniqueKeys(all, func(a Assignment) string { return a.Name })
	out := make([]Assignment, len(keys))
	for i, k := range keys {
		out[i] = byName[k]
	}
	return out
}
