package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", Interval{540, 600}, Interval{660, 720}, false},
		{"touching at boundary", Interval{540, 600}, Interval{600, 660}, false},
		{"touching reversed", Interval{600, 660}, Interval{540, 600}, false},
		{"partial overlap", Interval{540, 620}, Interval{600, 660}, true},
		{"contained", Interval{540, 720}, Interval{600, 660}, true},
		{"identical", Interval{540, 600}, Interval{540, 600}, true},
		{"zero-length cut inside", Interval{540, 600}, Interval{570, 570}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestSubtract(t *testing.T) {
	base := []Interval{{540, 1020}} // 09:00-17:00

	t.Run("no cuts", func(t *testing.T) {
		got := Subtract(base, nil, 15)
		assert.Equal(t, base, got)
	})

	t.Run("disjoint cut leaves base untouched", func(t *testing.T) {
		got := Subtract(base, []Interval{{0, 480}}, 15)
		assert.Equal(t, base, got)
	})

	t.Run("covering cut drops interval", func(t *testing.T) {
		got := Subtract(base, []Interval{{0, 1440}}, 15)
		assert.Empty(t, got)
	})

	t.Run("left truncation", func(t *testing.T) {
		got := Subtract(base, []Interval{{480, 600}}, 15)
		assert.Equal(t, []Interval{{600, 1020}}, got)
	})

	t.Run("right truncation", func(t *testing.T) {
		got := Subtract(base, []Interval{{960, 1080}}, 15)
		assert.Equal(t, []Interval{{540, 960}}, got)
	})

	t.Run("interior cut splits in two", func(t *testing.T) {
		got := Subtract(base, []Interval{{720, 780}}, 15)
		require.Len(t, got, 2)
		assert.Equal(t, Interval{540, 720}, got[0])
		assert.Equal(t, Interval{780, 1020}, got[1])

		// Pieces plus the cut reconstruct the base exactly: no gaps, no overlap
		assert.Equal(t, 720-540+1020-780+780-720, base[0].Length())
		assert.False(t, Overlaps(got[0], got[1]))
	})

	t.Run("short fragments are discarded", func(t *testing.T) {
		// Cut leaves a 10-minute sliver at the front, below the 15-minute step
		got := Subtract(base, []Interval{{550, 1020}}, 15)
		assert.Empty(t, got)
	})

	t.Run("multiple base windows act as a union", func(t *testing.T) {
		morning := Interval{540, 720}
		evening := Interval{1020, 1200}
		got := Subtract([]Interval{morning, evening}, []Interval{{600, 660}}, 15)
		assert.Equal(t, []Interval{{540, 600}, {660, 720}, {1020, 1200}}, got)
	})

	t.Run("zero-length cuts are ignored", func(t *testing.T) {
		got := Subtract(base, []Interval{{600, 600}}, 15)
		assert.Equal(t, base, got)
	})
}

func TestSubtractOrderIndependence(t *testing.T) {
	base := []Interval{{480, 1080}, {1140, 1320}}
	cuts := []Interval{{500, 560}, {700, 760}, {1000, 1200}, {450, 490}}

	want := Subtract(base, cuts, 15)

	permutations := [][]Interval{
		{cuts[3], cuts[2], cuts[1], cuts[0]},
		{cuts[1], cuts[3], cuts[0], cuts[2]},
		{cuts[2], cuts[0], cuts[3], cuts[1]},
	}

	for i, perm := range permutations {
		got := Subtract(base, perm, 15)
		assert.Equal(t, want, got, "permutation %d changed the result", i)
	}
}
