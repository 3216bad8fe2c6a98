package geo

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// GridWidth and GridHeight define the fixed tile grid the projection maps
	// onto.
	GridWidth  = 16
	GridHeight = 16

	// CroppedBottomRows is the number of southernmost rows (approximating
	// Antarctica) that map interfaces typically do not display. This is purely
	// a display concern - projection and filtering always cover the full grid.
	CroppedBottomRows = 2

	// Latitude is clamped to the usual Web-Mercator range, longitude to a full
	// revolution.
	maxLat = 85.0
	maxLon = 180.0

	// Component projections of rounded coordinates recur heavily across
	// assets, so both axes keep a bounded memo of recent inputs.
	projectionCacheSize = 4096
)

// MapProjection projects geographic coordinates onto the tile grid using the
// standard Web-Mercator vertical compression. Safe for concurrent use.
type MapProjection struct {
	xCache *lru.Cache[float64, int]
	yCache *lru.Cache[float64, int]
}

// NewMapProjection creates a projection with empty memoization caches.
func NewMapProjection() *MapProjection {
	xCache, err := lru.New[float64, int](projectionCacheSize)
	if err != nil {
		panic(err)
	}
	yCache, err := lru.New[float64, int](projectionCacheSize)
	if err != nil {
		panic(err)
	}
	return &MapProjection{xCache: xCache, yCache: yCache}
}

// ProjectX maps a longitude in degrees to a tile column in [0, GridWidth).
// Longitude is clamped to [-180, 180].
func (p *MapProjection) ProjectX(lon float64) int {
	if x, ok := p.xCache.Get(lon); ok {
		return x
	}

	clamped := clamp(lon, -maxLon, maxLon)
	x := clampTile(int((clamped+maxLon)/(2*maxLon)*GridWidth), GridWidth)

	p.xCache.Add(lon, x)
	return x
}

// ProjectY maps a latitude in degrees to a tile row in [0, GridHeight), row 0
// being the northernmost. Latitude is clamped to [-85, 85].
func (p *MapProjection) ProjectY(lat float64) int {
	if y, ok := p.yCache.Get(lat); ok {
		return y
	}

	clamped := clamp(lat, -maxLat, maxLat)
	latRad := clamped * math.Pi / 180
	mercN := math.Log(math.Tan(latRad) + 1/math.Cos(latRad))
	y := clampTile(int((1-mercN/math.Pi)/2*GridHeight), GridHeight)

	p.yCache.Add(lat, y)
	return y
}

// Project maps a (lat, lon) pair to its (x, y) tile.
func (p *MapProjection) Project(lat, lon float64) (x, y int) {
	return p.ProjectX(lon), p.ProjectY(lat)
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// clampTile keeps indices of boundary coordinates (lat -85, lon 180) inside
// the grid.
func clampTile(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}
