package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestHealthApply(t *testing.T) {
	tests := []struct {
		name   string
		start  uint16
		damage uint16
		want   uint16
	}{
		{"partial", 100, 10, 90},
		{"exact", 10, 10, 0},
		{"overkill saturates", 5, 10, 0},
		{"zero damage", 50, 0, 50},
		{"already zero", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(tt.start)
			if got := h.Apply(tt.damage); got != tt.want {
				t.Errorf("Apply(%d) = %d, want %d", tt.damage, got, tt.want)
			}
			if h.Defeated() != (tt.want == 0) {
				t.Errorf("Defeated() = %v with %d health", h.Defeated(), h.Current)
			}
		})
	}
}

func TestHealthSaturation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := NewHealth(rapid.Uint16().Draw(t, "health"))
		hits := rapid.SliceOf(rapid.Uint16()).Draw(t, "hits")

		prev := h.Current
		for _, d := range hits {
			h.Apply(d)
			want := uint16(0)
			if d < prev {
				want = prev - d
			}
			if h.Current != want {
				t.Fatalf("health %d - %d = %d, want %d", prev, d, h.Current, want)
			}
			prev = h.Current
		}
		if h.Fraction() < 0 || h.Fraction() > 1 {
			t.Fatalf("fraction %v out of range", h.Fraction())
		}
	})
}
