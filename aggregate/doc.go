// Package aggregate computes the price and name aggregates of a product list.
//
// Product data is messy: prices arrive as numbers, numeric text, blanks and
// empty strings. No operation here fails on bad data. An invalid price is
// either left out (totals, extremes) or replaced by a default (cost 0 in
// [Normalize]). Name-based operations include every product regardless of its
// price.
//
//	agg := aggregate.New(catalog.Products())
//	agg.NameJoin()          // "banana, mango, potato, avocado, coffee, tea"
//	agg.TotalValidPrice()   // 26
//	agg.PriceExtremes(aggregate.ExtremesFiltered)
//
// # Extremes modes
//
// [ExtremesFiltered] drops invalid prices and then takes the minimum and
// maximum. [ExtremesPermissive] replays a fold that treats an empty or zero
// accumulator as unset. A valid price of 0 can therefore be displaced by a later
// price, and an invalid price can take an unset slot. Both modes agree whenever
// no price is 0 and the first price is valid.
package aggregate
