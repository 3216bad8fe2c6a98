package catalog

import (
	"sort"
	"strings"

	"asset-catalog/core/utils"
)

// AssetID is an opaque identifier of an asset, globally unique within a
// provider's namespace.
type AssetID string

// TagSet is a set of free-form tags attached to an asset.
type TagSet map[string]struct{}

// NewTagSet builds a TagSet from a list of tags.
func NewTagSet(tags ...string) TagSet {
	ret := make(TagSet, len(tags))
	for _, tag := range tags {
		ret[tag] = struct{}{}
	}
	return ret
}

// Has reports whether the tag is present in the set.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Sorted returns the tags as a sorted slice.
func (s TagSet) Sorted() []string {
	ret := make([]string, 0, len(s))
	for tag := range s {
		ret = append(ret, tag)
	}
	sort.Strings(ret)
	return ret
}

// NumericParameters hold values that can be sorted and compared, e.g.
// "width" of 4.6 meters.
type NumericParameters map[string]float64

// VectorParameters hold fixed-length vector values, e.g. a version triple or an
// RGB color. All values of one parameter name have the same length.
type VectorParameters map[string][]float64

// TextParameters hold values that can only be compared for equality, e.g.
// "genus" = "Abies concolor".
type TextParameters map[string]string

// Location is one geographic observation of an asset.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// LocationParameters hold lists of geographic coordinates, e.g. places where a
// specimen naturally occurs.
type LocationParameters map[string][]Location

// SearchMatter maps lowercase searchable tokens to their search weight. All
// recorded tokens are guaranteed to map to weight > 0.
type SearchMatter map[string]float64

// Record records a token with the given weight, keeping the maximum weight when
// the token is already present. Tokens with weight <= 0 are excluded from
// search and not recorded at all.
func (m SearchMatter) Record(token string, weight float64) {
	if weight <= 0 {
		return
	}
	token = strings.ToLower(token)
	if weight > m[token] {
		m[token] = weight
	}
}

// Asset represents metadata of one separated, reusable piece of content.
//
// This is usually a model, material, entire scene or something else depending
// on the target software. The asset itself carries title, tags, parameters and
// preview - it does not know anything about the actual payload that gets
// materialized, that is described by AssetData. One Asset owns 0..N AssetData.
//
// Assets are immutable; they are created by a provider when its backing index
// is loaded and replaced wholesale when the provider refreshes. Use NewAsset to
// construct one, it derives the memoized search matter and combined parameters.
type Asset struct {
	ID          AssetID
	Title       string
	Type        AssetType
	PreviewFile FileID

	Tags               TagSet
	NumericParameters  NumericParameters
	VectorParameters   VectorParameters
	TextParameters     TextParameters
	LocationParameters LocationParameters

	// ForeignSearchMatter carries search tokens contributed from outside the
	// asset itself, e.g. titles of the categories containing it.
	ForeignSearchMatter map[string]float64

	searchMatter SearchMatter
	parameters   map[string]any
}

// NewAsset finalizes an asset record. The argument is taken by value; the
// returned asset owns its derived state and must not be mutated afterwards.
func NewAsset(a Asset) *Asset {
	if a.Tags == nil {
		a.Tags = TagSet{}
	}
	a.searchMatter = deriveSearchMatter(&a)
	a.parameters = combineParameters(&a)
	return &a
}

// SearchMatter returns the memoized mapping of lowercase searchable token to
// its search weight, derived from the title, type, tags and parameter values.
func (a *Asset) SearchMatter() SearchMatter {
	return a.searchMatter
}

// Parameters returns numeric, text and vector parameters combined in one map.
// Keys are unprefixed; the namespaces are independent, on a (rare) name
// collision the textual value wins over numeric, vector over both.
func (a *Asset) Parameters() map[string]any {
	return a.parameters
}

func combineParameters(a *Asset) map[string]any {
	ret := make(map[string]any, len(a.NumericParameters)+len(a.TextParameters)+len(a.VectorParameters))
	for name, value := range a.NumericParameters {
		ret[name] = value
	}
	for name, value := range a.TextParameters {
		ret[name] = value
	}
	for name, value := range a.VectorParameters {
		ret[name] = value
	}
	return ret
}

func deriveSearchMatter(a *Asset) SearchMatter {
	ret := SearchMatter{}
	for token, weight := range a.Type.SearchTokens() {
		ret.Record(token, weight)
	}

	title := strings.ToLower(a.Title)
	ret.Record(title, TitlePhraseSearchWeight)
	// The title tokens are weighted individually and higher than the phrase.
	for _, token := range strings.Fields(title) {
		ret.Record(token, TitleTokenSearchWeight)
	}

	for tag := range a.Tags {
		ret.Record(tag, SearchWeight("tag:"+tag))
	}
	for name, value := range a.TextParameters {
		ret.Record(value, SearchWeight("text:"+name))
	}
	for name, value := range a.NumericParameters {
		ret.Record(utils.ToString(value), SearchWeight("num:"+name))
	}
	for name, value := range a.VectorParameters {
		ret.Record(utils.ToString(value), SearchWeight("vec:"+name))
	}
	for token, weight := range a.ForeignSearchMatter {
		ret.Record(token, weight)
	}
	return ret
}
