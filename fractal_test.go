package noise

import (
	"errors"
	"math"
	"testing"
)

func TestFractal_ConstIdentity(t *testing.T) {
	// A constant source is unaffected by octave summing because the sum is
	// normalized by total amplitude.
	f := NewFractal()
	mustSetSource(t, f, 0, NewConst(0.6))
	v, err := f.GetValue(3, -1, 2)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if math.Abs(v-0.6) > 1e-12 {
		t.Errorf("fractal of const 0.6 = %v, want 0.6", v)
	}
}

func TestFractal_SingleOctavePassesThrough(t *testing.T) {
	f := NewFractal()
	f.SetOctaves(1)
	mustSetSource(t, f, 0, gradientModule{})
	v, err := f.GetValue(1, 2, 3)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if v != 6 {
		t.Errorf("single-octave fractal = %v, want the raw source value 6", v)
	}
}

func TestFractal_OctaveSum(t *testing.T) {
	// With the gradient source, octave o contributes
	// amp_o * lacunarity^o * (x+y+z); check against the closed form.
	f := NewFractal()
	f.SetOctaves(3)
	f.SetLacunarity(2)
	f.SetPersistence(0.5)
	mustSetSource(t, f, 0, gradientModule{})

	base := 1.0 + 2 + 3
	want := (1*base*1 + 0.5*base*2 + 0.25*base*4) / (1 + 0.5 + 0.25)
	v, err := f.GetValue(1, 2, 3)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if math.Abs(v-want) > 1e-12 {
		t.Errorf("fractal = %v, want %v", v, want)
	}
}

func TestFractal_OctavesClampedToOne(t *testing.T) {
	f := NewFractal()
	f.SetOctaves(0)
	if f.Octaves() != 1 {
		t.Errorf("SetOctaves(0) left octaves = %d, want 1", f.Octaves())
	}
}

func TestFractal_Unbound(t *testing.T) {
	_, err := NewFractal().GetValue(0, 0, 0)
	var unbound *UnboundSourceError
	if !errors.As(err, &unbound) {
		t.Fatalf("GetValue = %v, want UnboundSourceError", err)
	}
	if unbound.Module != "fractal" {
		t.Errorf("unbound module = %q, want fractal", unbound.Module)
	}
}
