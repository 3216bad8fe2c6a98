package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectX(t *testing.T) {
	p := NewMapProjection()

	t.Run("WestEdge", func(t *testing.T) {
		assert.Equal(t, 0, p.ProjectX(-180))
	})

	t.Run("EastEdge", func(t *testing.T) {
		assert.Equal(t, GridWidth-1, p.ProjectX(180))
	})

	t.Run("Meridian", func(t *testing.T) {
		assert.Equal(t, GridWidth/2, p.ProjectX(0))
	})

	t.Run("ClampsOutOfRange", func(t *testing.T) {
		assert.Equal(t, p.ProjectX(-180), p.ProjectX(-500))
		assert.Equal(t, p.ProjectX(180), p.ProjectX(500))
	})
}

func TestProjectY(t *testing.T) {
	p := NewMapProjection()

	t.Run("NorthEdge", func(t *testing.T) {
		assert.Equal(t, 0, p.ProjectY(85))
	})

	t.Run("SouthEdge", func(t *testing.T) {
		assert.Equal(t, GridHeight-1, p.ProjectY(-85))
	})

	t.Run("Equator", func(t *testing.T) {
		assert.Equal(t, GridHeight/2, p.ProjectY(0))
	})

	t.Run("NorthernLatitudesAboveEquator", func(t *testing.T) {
		assert.Less(t, p.ProjectY(50), p.ProjectY(0))
	})

	t.Run("ClampsOutOfRange", func(t *testing.T) {
		assert.Equal(t, p.ProjectY(85), p.ProjectY(90))
		assert.Equal(t, p.ProjectY(-85), p.ProjectY(-90))
	})
}

func TestProject(t *testing.T) {
	p := NewMapProjection()

	// Prague
	x, y := p.Project(50.07, 14.43)
	assert.Equal(t, 8, x)
	assert.Less(t, y, GridHeight/2)

	t.Run("RepeatedProjectionIsStable", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			x2, y2 := p.Project(50.07, 14.43)
			assert.Equal(t, x, x2)
			assert.Equal(t, y, y2)
		}
	})
}
