package noisemap

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"sort"

	"golang.org/x/image/bmp"
)

// ColorStop represents a color at a specific position in a rendering
// gradient. Positions are in the map's normalized value range: 0 is the
// smallest value in the map, 1 the largest.
type ColorStop struct {
	Pos   float64
	Color color.RGBA
}

// TerrainStops returns a gradient suitable for heightmap terrain: deep
// water through shallows, shore, grass, dirt, rock, and snow.
func TerrainStops() []ColorStop {
	deepWater := color.RGBA{0, 0, 128, 255}
	shallows := color.RGBA{0, 64, 255, 255}
	shore := color.RGBA{240, 224, 96, 255}
	grass := color.RGBA{32, 160, 0, 255}
	dirt := color.RGBA{128, 96, 64, 255}
	rock := color.RGBA{128, 128, 128, 255}
	snow := color.RGBA{255, 255, 255, 255}
	return []ColorStop{
		{0.0, deepWater},
		{0.375, shallows},
		{0.5, shore},
		{0.5625, grass},
		{0.75, dirt},
		{0.875, rock},
		{1.0, snow},
	}
}

// GrayscaleStops returns a black-to-white gradient.
func GrayscaleStops() []ColorStop {
	return []ColorStop{
		{0.0, color.RGBA{0, 0, 0, 255}},
		{1.0, color.RGBA{255, 255, 255, 255}},
	}
}

// sortStops returns the stops ordered by position. The input is not
// modified.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Pos < sorted[j].Pos
	})
	return sorted
}

// colorAt returns the gradient color at normalized position t. Positions
// outside the stop range clamp to the nearest stop.
func colorAt(sorted []ColorStop, t float64) color.RGBA {
	if len(sorted) == 0 {
		return color.RGBA{}
	}
	if len(sorted) == 1 {
		return sorted[0].Color
	}

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Pos >= t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	s1 := sorted[idx-1]
	s2 := sorted[idx]
	if s2.Pos == s1.Pos {
		return s1.Color
	}
	localT := (t - s1.Pos) / (s2.Pos - s1.Pos)
	return lerpColor(s1.Color, s2.Color, localT)
}

func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R) + t*(float64(c2.R)-float64(c1.R)) + 0.5),
		G: uint8(float64(c1.G) + t*(float64(c2.G)-float64(c1.G)) + 0.5),
		B: uint8(float64(c1.B) + t*(float64(c2.B)-float64(c1.B)) + 0.5),
		A: uint8(float64(c1.A) + t*(float64(c2.A)-float64(c1.A)) + 0.5),
	}
}

// Render colors the map with the gradient and returns the result. Values
// are normalized against the map's own minimum and maximum before lookup;
// a flat map renders entirely at position 0.
func Render(m *Map, stops []ColorStop) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width(), m.Height()))
	sorted := sortStops(stops)

	min, max := m.MinMax()
	scale := 0.0
	if max > min {
		scale = 1 / (max - min)
	}
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			t := (m.Get(x, y) - min) * scale
			img.SetRGBA(x, y, colorAt(sorted, t))
		}
	}
	return img
}

// WriteBMP encodes the image as Windows BMP.
func WriteBMP(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveBMP writes the image to a BMP file.
func SaveBMP(path string, img image.Image) error {
	return saveWith(path, img, bmp.Encode)
}

// SavePNG writes the image to a PNG file.
func SavePNG(path string, img image.Image) error {
	return saveWith(path, img, png.Encode)
}

func saveWith(path string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return encode(f, img)
}
