// Package catalog defines the product record and the fixed data sets the
// walkthrough runs over.
//
// Fixtures are returned by functions rather than held in package variables:
// every call hands back a fresh slice, so no example can disturb another.
package catalog

import (
	"fmt"

	"github.com/BryanSetuke/BRASET497-BCL2401-A-Bryan-Setuke-DJS06/price"
)

// Product is a named item with an unparsed price.
type Product struct {
	Name  string    `json:"name" yaml:"name"`
	Price price.Raw `json:"price" yaml:"price"`
}

// String renders the product as name=price, quoting textual prices.
func (p Product) String() string {
	return fmt.Sprintf("%s=%s", p.Name, p.Price)
}

// Provinces returns the province fixture in its original order.
func Provinces() []string {
	return []string{"Western Cape", "Gauteng", "Northern Cape", "Eastern Cape", "KwaZulu-Natal", "Free State"}
}

// Names returns the name fixture in its original order.
func Names() []string {
	return []string{"Ashwin", "Sibongile", "Jan-Hendrik", "Sifso", "Shailen", "Frikkie"}
}

// Products returns the product fixture. Prices deliberately mix numbers,
// numeric text, a blank and an empty string.
func Products() []Product {
	return []Product{
		{Name: "banana", Price: price.Text("2")},
		{Name: "mango", Price: price.Number(6)},
		{Name: "potato", Price: price.Text(" ")},
		{Name: "avocado", Price: price.Text("8")},
		{Name: "coffee", Price: price.Number(10)},
		{Name: "tea", Price: price.Text("")},
	}
}
