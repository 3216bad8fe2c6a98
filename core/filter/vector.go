package filter

import (
	"fmt"
	"math"

	"asset-catalog/core/catalog"
)

// VectorComparator decides whether a vector parameter value satisfies a
// comparison. Comparators panic on vector length mismatch - mismatched lengths
// within one parameter mean a data model invariant was broken upstream.
type VectorComparator interface {
	Compare(value []float64) bool
	// AsDict returns the canonical representation of the comparator, unique
	// per comparator type and configuration.
	AsDict() map[string]any
}

// DistanceFunc measures distance between two same-length vectors.
type DistanceFunc func(a, b []float64) float64

// EuclideanDistance is the default DistanceFunc of VectorDistanceComparator.
func EuclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// VectorDistanceComparator passes vectors whose distance to a target vector is
// within a threshold.
//
// A custom distance function has to come with a unique name: the name is part
// of the canonical representation used for query caching, and two comparators
// that filter differently must never share one.
type VectorDistanceComparator struct {
	Value    []float64
	Distance float64

	distanceFunc DistanceFunc
	funcName     string
}

// NewVectorDistanceComparator creates a comparator using Euclidean distance.
func NewVectorDistanceComparator(value []float64, distance float64) *VectorDistanceComparator {
	return &VectorDistanceComparator{
		Value:        value,
		Distance:     distance,
		distanceFunc: EuclideanDistance,
		funcName:     "euclidean",
	}
}

// NewVectorDistanceComparatorFunc creates a comparator with a custom named
// distance function, e.g. perceptual color distance.
func NewVectorDistanceComparatorFunc(
	value []float64, distance float64, fn DistanceFunc, name string,
) *VectorDistanceComparator {
	return &VectorDistanceComparator{
		Value:        value,
		Distance:     distance,
		distanceFunc: fn,
		funcName:     name,
	}
}

// Compare reports whether the value is within the distance threshold.
func (c *VectorDistanceComparator) Compare(value []float64) bool {
	mustMatchLength(value, c.Value)
	return c.distanceFunc(value, c.Value) <= c.Distance
}

// AsDict returns the canonical representation of the comparator.
func (c *VectorDistanceComparator) AsDict() map[string]any {
	return map[string]any{"value": c.Value, "distance": c.Distance, "function": c.funcName}
}

// VectorLexicographicComparator compares vectors as ordered tuples, Min and
// Max are inclusive.
type VectorLexicographicComparator struct {
	Min []float64
	Max []float64
}

// NewVectorLexicographicComparator creates an inclusive lexicographic range
// comparator.
func NewVectorLexicographicComparator(min, max []float64) *VectorLexicographicComparator {
	return &VectorLexicographicComparator{Min: min, Max: max}
}

// Compare reports whether Min <= value <= Max in lexicographic order.
func (c *VectorLexicographicComparator) Compare(value []float64) bool {
	mustMatchLength(value, c.Min)
	mustMatchLength(value, c.Max)
	return lexicographicLessEq(c.Min, value) && lexicographicLessEq(value, c.Max)
}

// AsDict returns the canonical representation of the comparator.
func (c *VectorLexicographicComparator) AsDict() map[string]any {
	return map[string]any{"min": c.Min, "max": c.Max, "method": "lexicographic"}
}

func lexicographicLessEq(a, b []float64) bool {
	for i := range a {
		if a[i] < b[i] {
			return true
		}
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

// VectorComponentWiseComparator compares vectors component-wise - every
// component independently within its inclusive [Min[i], Max[i]] range.
type VectorComponentWiseComparator struct {
	Min []float64
	Max []float64
}

// NewVectorComponentWiseComparator creates an inclusive component-wise range
// comparator.
func NewVectorComponentWiseComparator(min, max []float64) *VectorComponentWiseComparator {
	return &VectorComponentWiseComparator{Min: min, Max: max}
}

// Compare reports whether every component lies within its range.
func (c *VectorComponentWiseComparator) Compare(value []float64) bool {
	mustMatchLength(value, c.Min)
	mustMatchLength(value, c.Max)
	for i, component := range value {
		if component < c.Min[i] || component > c.Max[i] {
			return false
		}
	}
	return true
}

// AsDict returns the canonical representation of the comparator.
func (c *VectorComponentWiseComparator) AsDict() map[string]any {
	return map[string]any{"min": c.Min, "max": c.Max, "method": "component-wise"}
}

func mustMatchLength(a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vector length mismatch: %d != %d", len(a), len(b)))
	}
}

// VectorParameterFilter passes assets whose vector parameter satisfies the
// comparator.
type VectorParameterFilter struct {
	// Name is the kind-prefixed parameter name, e.g. "vec:introduced_in".
	Name       string
	Comparator VectorComparator

	bareName string
}

// NewVectorParameterFilter creates a vector parameter filter.
func NewVectorParameterFilter(name string, comparator VectorComparator) *VectorParameterFilter {
	return &VectorParameterFilter{
		Name:       name,
		Comparator: comparator,
		bareName:   catalog.NameWithoutKind(name),
	}
}

// Match reports whether the asset has the parameter and the comparator accepts
// its value.
func (f *VectorParameterFilter) Match(a *catalog.Asset) bool {
	value, ok := a.VectorParameters[f.bareName]
	if !ok {
		return false
	}
	return f.Comparator.Compare(value)
}

// AsDict returns the canonical representation of the filter.
func (f *VectorParameterFilter) AsDict() map[string]any {
	return map[string]any{f.Name: f.Comparator.AsDict()}
}
