package noisemap

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/noise"
)

// BuildPlane samples src over the rectangle [x0, x1]×[z0, z1] on the y=0
// plane into a width×height map. Cell (0, 0) corresponds to (x0, z0);
// x grows to the right, z downward. Rows are evaluated in parallel; the
// first evaluation error aborts the build.
func BuildPlane(src noise.Module, width, height int, x0, x1, z0, z1 float64) (*Map, error) {
	if err := checkRange("plane", x0, x1, z0, z1); err != nil {
		return nil, err
	}
	model := noise.NewPlane()
	model.SetGenerator(src)
	return build("plane", width, height, func(u, v float64) (float64, error) {
		return model.GetValue(x0+(x1-x0)*u, z0+(z1-z0)*v)
	})
}

// BuildCylinder samples src over the cylinder surface patch
// [angle0, angle1]×[h0, h1] (angles in degrees) into a width×height map.
// Cell (0, 0) corresponds to (angle0, h0).
func BuildCylinder(src noise.Module, width, height int, angle0, angle1, h0, h1 float64) (*Map, error) {
	if err := checkRange("cylinder", angle0, angle1, h0, h1); err != nil {
		return nil, err
	}
	model := noise.NewCylinder()
	model.SetGenerator(src)
	return build("cylinder", width, height, func(u, v float64) (float64, error) {
		return model.GetValue(angle0+(angle1-angle0)*u, h0+(h1-h0)*v)
	})
}

// BuildSphere samples src over the sphere surface patch
// [lat0, lat1]×[lon0, lon1] (degrees) into a width×height map. Cell (0, 0)
// corresponds to (lat0, lon0); longitude varies along rows.
func BuildSphere(src noise.Module, width, height int, lat0, lat1, lon0, lon1 float64) (*Map, error) {
	if err := checkRange("sphere", lat0, lat1, lon0, lon1); err != nil {
		return nil, err
	}
	model := noise.NewSphere()
	model.SetGenerator(src)
	return build("sphere", width, height, func(u, v float64) (float64, error) {
		return model.GetValue(lat0+(lat1-lat0)*v, lon0+(lon1-lon0)*u)
	})
}

func checkRange(kind string, u0, u1, v0, v1 float64) error {
	if u1 <= u0 || v1 <= v0 {
		return fmt.Errorf("noisemap: %s: empty sample range [%g,%g]x[%g,%g]", kind, u0, u1, v0, v1)
	}
	return nil
}

// build fills a width×height map by calling sample with normalized grid
// coordinates u, v in [0, 1). Rows run concurrently, capped at GOMAXPROCS
// workers; sample must therefore be safe for concurrent use, which every
// frozen module graph is.
func build(kind string, width, height int, sample func(u, v float64) (float64, error)) (*Map, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("noisemap: %s: invalid size %dx%d", kind, width, height)
	}
	noise.Logger().Debug("building noise map", "kind", kind, "width", width, "height", height)

	m := NewMap(width, height)
	du := 1.0 / float64(width)
	dv := 1.0 / float64(height)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < height; y++ {
		row := m.row(y)
		v := float64(y) * dv
		g.Go(func() error {
			for x := 0; x < width; x++ {
				val, err := sample(float64(x)*du, v)
				if err != nil {
					return err
				}
				row[x] = val
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}
