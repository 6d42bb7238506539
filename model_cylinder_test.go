package noise

import (
	"errors"
	"math"
	"testing"
)

// axisModule returns one coordinate of the query point, for checking
// projections.
type axisModule int

const (
	axisX axisModule = iota
	axisY
	axisZ
)

func (axisModule) SourceCount() int { return 0 }

func (axisModule) SetSource(index int, source Module) error {
	return &IndexOutOfRangeError{Module: "axis", Index: index, Count: 0}
}

func (axisModule) Source(index int) (Module, error) {
	return nil, &IndexOutOfRangeError{Module: "axis", Index: index, Count: 0}
}

func (a axisModule) GetValue(x, y, z float64) (float64, error) {
	switch a {
	case axisX:
		return x, nil
	case axisY:
		return y, nil
	default:
		return z, nil
	}
}

func TestCylinder_UnboundGenerator(t *testing.T) {
	c := NewCylinder()
	_, err := c.GetValue(0, 0)
	var unbound *UnboundSourceError
	if !errors.As(err, &unbound) {
		t.Fatalf("GetValue = %v, want UnboundSourceError", err)
	}
	if unbound.Module != "cylinder" {
		t.Errorf("unbound module = %q, want cylinder", unbound.Module)
	}
}

func TestCylinder_Projection(t *testing.T) {
	const tol = 1e-12
	tests := []struct {
		name                string
		angle, height       float64
		wantX, wantY, wantZ float64
	}{
		{"angle 0", 0, 2.5, 1, 2.5, 0},
		{"angle 90", 90, -3, 0, -3, 1},
		{"angle 180", 180, 0, -1, 0, 0},
		{"angle 270", 270, 7, 0, 7, -1},
		{"angle 45", 45, 1, math.Sqrt2 / 2, 1, math.Sqrt2 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCylinder()
			for axis, want := range map[axisModule]float64{
				axisX: tt.wantX, axisY: tt.wantY, axisZ: tt.wantZ,
			} {
				c.SetGenerator(axis)
				v, err := c.GetValue(tt.angle, tt.height)
				if err != nil {
					t.Fatalf("GetValue(%v, %v) failed: %v", tt.angle, tt.height, err)
				}
				if math.Abs(v-want) > tol {
					t.Errorf("axis %d at (%v, %v) = %v, want %v", axis, tt.angle, tt.height, v, want)
				}
			}
		})
	}
}

func TestCylinder_DelegatesUnmodified(t *testing.T) {
	// The generator value comes back unscaled.
	c := NewCylinder()
	c.SetGenerator(NewConst(42))
	v, err := c.GetValue(123, -5)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if v != 42 {
		t.Errorf("GetValue = %v, want 42", v)
	}
}
