package noise

import (
	"errors"
	"math"
	"testing"
)

func modify(t *testing.T, m *Modifier, in float64) float64 {
	t.Helper()
	mustSetSource(t, m, 0, NewConst(in))
	v, err := m.GetValue(0, 0, 0)
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	return v
}

func TestModifier_Abs(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"positive", 3, 3},
		{"negative", -3, 3},
		{"zero", 0, 0},
		{"neg inf", math.Inf(-1), math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modify(t, NewAbs(), tt.in); got != tt.want {
				t.Errorf("Abs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModifier_Invert(t *testing.T) {
	if got := modify(t, NewInvert(), 2.5); got != -2.5 {
		t.Errorf("Invert(2.5) = %v, want -2.5", got)
	}
	if got := modify(t, NewInvert(), -4); got != 4 {
		t.Errorf("Invert(-4) = %v, want 4", got)
	}
}

func TestModifier_Custom(t *testing.T) {
	double := NewModifier("double", func(v float64) float64 { return 2 * v })
	if got := modify(t, double, 21); got != 42 {
		t.Errorf("double(21) = %v, want 42", got)
	}
}

func TestModifier_Unbound(t *testing.T) {
	_, err := NewAbs().GetValue(0, 0, 0)
	var unbound *UnboundSourceError
	if !errors.As(err, &unbound) {
		t.Fatalf("GetValue = %v, want UnboundSourceError", err)
	}
	if unbound.Module != "abs" || unbound.Slot != 0 {
		t.Errorf("unbound = %+v, want abs slot 0", unbound)
	}
}
