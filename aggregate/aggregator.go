package aggregate

import (
	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/catalog"
)

// Aggregator binds a product list once and exposes every aggregate over it.
// It holds its own copy of the products and is safe to share.
type Aggregator struct {
	products []catalog.Product
}

// New copies products into a new Aggregator.
func New(products []catalog.Product) *Aggregator {
	dst := make([]catalog.Product, len(products))
	copy(dst, products)
	return &Aggregator{products: dst}
}

// Products returns a copy of the bound products.
func (a *Aggregator) Products() []catalog.Product {
	out := make([]catalog.Product, len(a.products))
	copy(out, a.products)
	return out
}

// NameJoin joins the bound product names with ", ".
func (a *Aggregator) NameJoin() string { return NameJoin(a.products) }

// NameConcat concatenates the bound product names.
func (a *Aggregator) NameConcat() string { return NameConcat(a.products) }

// TotalValidPrice sums the valid prices of the bound products.
func (a *Aggregator) TotalValidPrice() int { return TotalValidPrice(a.products) }

// LengthFilter returns the bound products whose name is at most maxLen long.
func (a *Aggregator) LengthFilter(maxLen int) []catalog.Product {
	return LengthFilter(a.products, maxLen)
}

// PriceExtremes returns the highest and lowest bound prices under mode.
func (a *Aggregator) PriceExtremes(mode ExtremesMode) Extremes {
	return PriceExtremes(a.products, mode)
}

// Normalize maps each bound product name to its record.
func (a *Aggregator) Normalize() map[string]Record { return Normalize(a.products) }

// NormalizeEntries is [Aggregator.Normalize] in first-appearance key order.
func (a *Aggregator) NormalizeEntries() []Keyed { return NormalizeEntries(a.products) }

// Summary is every aggregate of one product list.
type Summary struct {
	NameJoin   string            `json:"name_join" yaml:"name_join"`
	Short      []catalog.Product `json:"short" yaml:"short"`
	Total      int               `json:"total" yaml:"total"`
	NameConcat string            `json:"name_concat" yaml:"name_concat"`
	Extremes   Extremes          `json:"extremes" yaml:"extremes"`
	Normalized []Keyed           `json:"normalized" yaml:"normalized"`
}

// Summary computes every aggregate over the bound products.
func (a *Aggregator) Summary(maxLen int, mode ExtremesMode) Summary {
	return Summary{
		NameJoin:   a.NameJoin(),
		Short:      a.LengthFilter(maxLen),
		Total:      a.TotalValidPrice(),
		NameConcat: a.NameConcat(),
		Extremes:   a.PriceExtremes(mode),
		Normalized: a.NormalizeEntries(),
	}
}
