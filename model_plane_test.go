package noise

import (
	"errors"
	"testing"
)

func TestPlane_UnboundGenerator(t *testing.T) {
	p := NewPlane()
	_, err := p.GetValue(0, 0)
	var unbound *UnboundSourceError
	if !errors.As(err, &unbound) {
		t.Fatalf("GetValue = %v, want UnboundSourceError", err)
	}
	if unbound.Module != "plane" {
		t.Errorf("unbound module = %q, want plane", unbound.Module)
	}
}

func TestPlane_Projection(t *testing.T) {
	tests := []struct {
		name string
		axis axisModule
		x, z float64
		want float64
	}{
		{"x passes through", axisX, 3.5, -2, 3.5},
		{"y is always zero", axisY, 3.5, -2, 0},
		{"z passes through", axisZ, 3.5, -2, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			p.SetGenerator(tt.axis)
			v, err := p.GetValue(tt.x, tt.z)
			if err != nil {
				t.Fatalf("GetValue failed: %v", err)
			}
			if v != tt.want {
				t.Errorf("GetValue(%v, %v) = %v, want %v", tt.x, tt.z, v, tt.want)
			}
		})
	}
}

func TestPlane_Accessors(t *testing.T) {
	p := NewPlane()
	if p.Generator() != nil {
		t.Error("generator bound by default, want nil")
	}
	c := NewConst(1)
	p.SetGenerator(c)
	if p.Generator() != Module(c) {
		t.Error("Generator() does not return the bound module")
	}
	p.SetGenerator(nil)
	if p.Generator() != nil {
		t.Error("SetGenerator(nil) did not unbind")
	}
}
