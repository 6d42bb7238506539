package noise

import "testing"

func TestScaleBias(t *testing.T) {
	tests := []struct {
		name        string
		scale, bias float64
		in          float64
		want        float64
	}{
		{"identity", 1, 0, 0.75, 0.75},
		{"scale only", 2, 0, -3, -6},
		{"bias only", 1, 10, 5, 15},
		{"remap [-1,1] to [0,1]", 0.5, 0.5, -1, 0},
		{"remap upper end", 0.5, 0.5, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScaleBias()
			s.SetScale(tt.scale)
			s.SetBias(tt.bias)
			mustSetSource(t, s, 0, NewConst(tt.in))
			v, err := s.GetValue(0, 0, 0)
			if err != nil {
				t.Fatalf("GetValue failed: %v", err)
			}
			if v != tt.want {
				t.Errorf("scalebias(%v*%v+%v) = %v, want %v", tt.in, tt.scale, tt.bias, v, tt.want)
			}
		})
	}
}

func TestScaleBias_Defaults(t *testing.T) {
	s := NewScaleBias()
	if s.Scale() != DefaultScale || s.Bias() != DefaultBias {
		t.Errorf("defaults = scale %v bias %v, want %v and %v", s.Scale(), s.Bias(), DefaultScale, DefaultBias)
	}
}
