package provider

import (
	"fmt"
	"sort"

	"asset-catalog/core/catalog"
	"asset-catalog/core/filter"
	"asset-catalog/core/query"
)

// DataView is the materialized result of running a query against a provider:
// the filtered, sorted asset list plus aggregated parameter metadata.
type DataView struct {
	Assets         []*catalog.Asset
	ParametersMeta *catalog.AssetParametersMeta
	UsedQuery      *query.Query
}

// NewDataView materializes the query: lists the category's assets, keeps only
// those passing all filters, sorts by the query's sort mode and aggregates the
// parameters meta of the survivors.
func NewDataView(p AssetProvider, q *query.Query) *DataView {
	assets := []*catalog.Asset{}
	for _, asset := range ListAssets(p, q.CategoryID, q.Recursive) {
		if matchesAll(asset, q.Filters) {
			assets = append(assets, asset)
		}
	}

	sortAssets(assets, q)

	return &DataView{
		Assets:         assets,
		ParametersMeta: catalog.NewAssetParametersMeta(assets),
		UsedQuery:      q,
	}
}

// NewEmptyDataView returns a view containing no data, useful where a DataView
// cannot be constructed yet.
func NewEmptyDataView() *DataView {
	return &DataView{
		Assets:         []*catalog.Asset{},
		ParametersMeta: catalog.NewAssetParametersMeta(nil),
	}
}

// Query runs the query against the provider. High level API, consider using
// this instead of ListAssets.
func Query(p AssetProvider, q *query.Query) *DataView {
	return NewDataView(p, q)
}

func matchesAll(asset *catalog.Asset, filters []filter.Filter) bool {
	for _, f := range filters {
		if !f.Match(asset) {
			return false
		}
	}
	return true
}

func sortAssets(assets []*catalog.Asset, q *query.Query) {
	switch q.SortMode {
	case query.SortAlphabeticalAsc:
		sort.SliceStable(assets, func(i, j int) bool { return assets[i].Title < assets[j].Title })
	case query.SortAlphabeticalDesc:
		sort.SliceStable(assets, func(i, j int) bool { return assets[i].Title > assets[j].Title })
	case query.SortMostRelevant:
		scorer := lastSearchFilter(q.Filters)
		score := func(a *catalog.Asset) float64 {
			if scorer == nil {
				return 1.0
			}
			return scorer.Score(a.ID)
		}
		sort.SliceStable(assets, func(i, j int) bool { return score(assets[i]) > score(assets[j]) })
	default:
		panic(fmt.Sprintf("unknown sort mode %q", q.SortMode))
	}
}

// lastSearchFilter returns the last applied search filter of the query - the
// one whose recorded scores define "most relevant" ordering.
func lastSearchFilter(filters []filter.Filter) *filter.SearchFilter {
	for i := len(filters) - 1; i >= 0; i-- {
		if sf, ok := filters[i].(*filter.SearchFilter); ok {
			return sf
		}
	}
	return nil
}
