package catalog

import "strings"

// CategoryID is an opaque identifier of a category, globally unique within a
// provider's namespace. Categories form a forest reachable from RootCategoryID.
type CategoryID string

// RootCategoryID is the synthetic root shared by all providers. There is exactly
// one root per merged provider set; providers are not required to return
// metadata for it.
const RootCategoryID CategoryID = "/"

// CategoryTitleSearchWeight is the search weight of category titles merged into
// an asset's foreign search matter.
const CategoryTitleSearchWeight = 2.0

// Category describes one node of the category tree. The parent/child relation
// is not stored on the category itself, it is derived through provider queries.
type Category struct {
	ID          CategoryID
	Title       string
	PreviewFile FileID
}

// DefaultRootCategory is returned by lookups when not even the provider root
// category is available (e.g. no provider registered). Callers displaying
// categories never have to handle "no category".
var DefaultRootCategory = Category{ID: RootCategoryID, Title: "All"}

// InferParentCategoryID infers the parent category ID by removing the last path
// part. The root category has no parent, an empty ID is returned for it.
//
//	"/botaniq/coniferous" -> "/botaniq"
//	"/botaniq" -> "/"
//	"/" -> ""
func InferParentCategoryID(id CategoryID) CategoryID {
	if id == RootCategoryID {
		return ""
	}

	split := strings.Split(string(id), "/")
	if len(split) <= 2 {
		return RootCategoryID
	}
	return CategoryID(strings.Join(split[:len(split)-1], "/"))
}
