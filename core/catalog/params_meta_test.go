package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssetParametersMeta(t *testing.T) {
	assets := []*Asset{
		NewAsset(Asset{
			ID:                "/botaniq/Abies",
			Title:             "Abies",
			Type:              AssetTypeModel,
			Tags:              NewTagSet("Outdoor"),
			NumericParameters: NumericParameters{"height": 4.0},
			TextParameters:    TextParameters{"genus": "Abies"},
			VectorParameters:  VectorParameters{"introduced_in": {1, 0, 0}},
			LocationParameters: LocationParameters{
				"native_observations": {{Lat: 50.0, Lon: 14.4}},
			},
		}),
		NewAsset(Asset{
			ID:                "/botaniq/Pinus",
			Title:             "Pinus",
			Type:              AssetTypeModel,
			Tags:              NewTagSet("Outdoor", "Park"),
			NumericParameters: NumericParameters{"height": 11.0},
			TextParameters:    TextParameters{"genus": "Pinus"},
			VectorParameters:  VectorParameters{"introduced_in": {2, 1, 0}},
		}),
	}
	meta := NewAssetParametersMeta(assets)

	t.Run("NumericRange", func(t *testing.T) {
		require.Contains(t, meta.Numeric, "num:height")
		assert.Equal(t, 4.0, meta.Numeric["num:height"].Min)
		assert.Equal(t, 11.0, meta.Numeric["num:height"].Max)
	})

	t.Run("TextUniqueValues", func(t *testing.T) {
		require.Contains(t, meta.Text, "text:genus")
		assert.Len(t, meta.Text["text:genus"].UniqueValues, 2)
	})

	t.Run("VectorComponentRanges", func(t *testing.T) {
		require.Contains(t, meta.Vector, "vec:introduced_in")
		vector := meta.Vector["vec:introduced_in"]
		assert.Equal(t, 3, vector.Length)
		assert.Equal(t, []float64{1, 0, 0}, vector.Min)
		assert.Equal(t, []float64{2, 1, 0}, vector.Max)
	})

	t.Run("LocationPresence", func(t *testing.T) {
		assert.Contains(t, meta.Location, "loc:native_observations")
	})

	t.Run("UniqueTagsPrefixed", func(t *testing.T) {
		assert.Contains(t, meta.UniqueTags, "tag:Outdoor")
		assert.Contains(t, meta.UniqueTags, "tag:Park")
	})

	t.Run("ParameterNamesCoverAllKinds", func(t *testing.T) {
		for _, name := range []string{"num:height", "text:genus", "vec:introduced_in", "loc:native_observations"} {
			assert.Contains(t, meta.UniqueParameterNames, name)
		}
	})
}

func TestVectorParameterMetaLengthMismatchPanics(t *testing.T) {
	meta := &VectorParameterMeta{Name: "vec:introduced_in", Length: 3, Min: []float64{0, 0, 0}, Max: []float64{0, 0, 0}}
	assert.Panics(t, func() {
		meta.RegisterValue([]float64{1, 2})
	})
}

func TestFormatParameterName(t *testing.T) {
	assert.Equal(t, "Triangle Count", FormatParameterName("num:triangle_count"))
	assert.Equal(t, "Width", FormatParameterName("width"))
}
