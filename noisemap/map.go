// Package noisemap samples scalar-field graphs from github.com/gogpu/noise
// into rectangular grids and renders those grids as images.
//
// A Map is a width×height float64 buffer. The Build functions fill maps by
// sampling a module graph across a plane, cylinder, or sphere surface,
// evaluating rows in parallel. Render turns a map into a gradient-colored
// image that the BMP and PNG writers can encode.
package noisemap

// Map represents a rectangular grid of scalar field values.
type Map struct {
	width  int
	height int
	values []float64
	border float64
}

// NewMap creates a new map with the given dimensions, filled with zeros.
func NewMap(width, height int) *Map {
	return &Map{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
}

// Width returns the width of the map.
func (m *Map) Width() int {
	return m.width
}

// Height returns the height of the map.
func (m *Map) Height() int {
	return m.height
}

// SetBorderValue sets the value reported for out-of-bounds reads.
func (m *Map) SetBorderValue(v float64) {
	m.border = v
}

// BorderValue returns the value reported for out-of-bounds reads.
func (m *Map) BorderValue() float64 {
	return m.border
}

// Set stores the value of a single cell. Out-of-bounds writes are ignored.
func (m *Map) Set(x, y int, v float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.values[y*m.width+x] = v
}

// Get returns the value of a single cell, or the border value when (x, y)
// is outside the map.
func (m *Map) Get(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return m.border
	}
	return m.values[y*m.width+x]
}

// Fill sets every cell to v.
func (m *Map) Fill(v float64) {
	for i := range m.values {
		m.values[i] = v
	}
}

// Values returns a row-major copy of the grid.
func (m *Map) Values() []float64 {
	out := make([]float64, len(m.values))
	copy(out, m.values)
	return out
}

// MinMax returns the smallest and largest values in the map. Both are 0
// for an empty map.
func (m *Map) MinMax() (min, max float64) {
	if len(m.values) == 0 {
		return 0, 0
	}
	min, max = m.values[0], m.values[0]
	for _, v := range m.values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// row returns the backing slice for row y. Builder internals write through
// this to avoid per-cell bounds checks.
func (m *Map) row(y int) []float64 {
	return m.values[y*m.width : (y+1)*m.width]
}
