package filter

import (
	"regexp"
	"strings"
	"sync"

	"asset-catalog/core/catalog"
)

// searchFilterName is the unique canonical key of SearchFilter.
const searchFilterName = "builtin:search"

// Affix score coefficients. The values are empirically chosen and tunable,
// none of the rest of the scoring depends on their exact magnitudes.
const (
	exactMatchScore  = 5.0
	prefixMatchScore = 3.0
	infixMatchScore  = 2.0

	// subsequentMatchBonus multiplies the longest run of consecutively
	// matching needle tokens when the whole query matched in one run.
	subsequentMatchBonus = 5.0
)

// needleSplitPattern splits a search string into keywords.
var needleSplitPattern = regexp.MustCompile(`[ ,_\-]+`)

// keywordSynonyms translates search keywords to what the corpus actually uses.
// Be careful when adding entries: a translated keyword can no longer find
// anything named by the original keyword.
var keywordSynonyms = map[string]string{
	"hdri": "world",
	"hdr":  "world",
}

// SearchFilter performs fuzzy multi-token full text search over asset search
// matter and records a per-asset relevance score for "most relevant" sorting.
//
// A token wrapped in "quotes" requires an exact haystack match; if a quoted
// token matches nothing the asset is rejected regardless of other tokens.
type SearchFilter struct {
	// Search is the raw query string.
	Search string

	needles []string

	mu     sync.Mutex
	scores map[catalog.AssetID]float64
}

// NewSearchFilter creates a search filter from a raw query string.
func NewSearchFilter(search string) *SearchFilter {
	return &SearchFilter{
		Search:  search,
		needles: KeywordsFromSearch(search),
		scores:  map[catalog.AssetID]float64{},
	}
}

// KeywordsFromSearch returns the ordered lowercase keywords to search for.
// The search string is split on whitespace, commas, dashes and underscores,
// and the synonym table is applied to unquoted keywords.
func KeywordsFromSearch(search string) []string {
	ret := []string{}
	for _, keyword := range needleSplitPattern.Split(strings.ToLower(search), -1) {
		if keyword == "" {
			continue
		}
		if translated, ok := keywordSynonyms[keyword]; ok {
			keyword = translated
		}
		ret = append(ret, keyword)
	}
	return ret
}

// Match scores the asset against the needle keywords and reports whether the
// final score is positive. An empty search matches everything.
func (f *SearchFilter) Match(a *catalog.Asset) bool {
	if len(f.needles) == 0 {
		return true
	}

	maxAffixScore := 0.0
	multipleMatchCount := 0
	maxSubsequentMatches := 0
	currentRun := 0

	for _, needle := range f.needles {
		quoted := len(needle) >= 2 && strings.HasPrefix(needle, `"`) && strings.HasSuffix(needle, `"`)
		bare := needle
		if quoted {
			bare = needle[1 : len(needle)-1]
		}

		best := 0.0
		for haystack, weight := range a.SearchMatter() {
			score := affixScore(haystack, bare, quoted) * weight
			if score > best {
				best = score
			}
		}

		if best <= 0 {
			if quoted {
				// a quoted token with no exact match rejects the asset outright
				f.recordScore(a.ID, 0)
				return false
			}
			currentRun = 0
			continue
		}

		multipleMatchCount++
		currentRun++
		if currentRun > maxSubsequentMatches {
			maxSubsequentMatches = currentRun
		}
		if best > maxAffixScore {
			maxAffixScore = best
		}
	}

	score := maxAffixScore
	if multipleMatchCount > 0 {
		if maxSubsequentMatches >= multipleMatchCount {
			score *= subsequentMatchBonus * float64(maxSubsequentMatches)
		} else {
			score *= float64(multipleMatchCount)
		}
	}

	f.recordScore(a.ID, score)
	return score > 0
}

// affixScore scores how well the needle matches one haystack token. Quoted
// needles only count on exact equality.
func affixScore(haystack, needle string, quoted bool) float64 {
	if haystack == needle {
		return exactMatchScore
	}
	if quoted {
		return 0
	}
	if strings.HasPrefix(haystack, needle) {
		return prefixMatchScore
	}
	if strings.Contains(haystack, needle) {
		return infixMatchScore
	}
	return 0
}

// Score returns the relevance score recorded for the asset by the last Match
// call. Assets never scored default to 1.0.
func (f *SearchFilter) Score(id catalog.AssetID) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if score, ok := f.scores[id]; ok {
		return score
	}
	return 1.0
}

func (f *SearchFilter) recordScore(id catalog.AssetID, score float64) {
	f.mu.Lock()
	f.scores[id] = score
	f.mu.Unlock()
}

// AsDict returns the canonical representation of the filter.
func (f *SearchFilter) AsDict() map[string]any {
	return map[string]any{searchFilterName: f.Search}
}
