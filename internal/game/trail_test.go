package game

import (
	"math"
	"testing"
)

func TestTrailEvictsOldest(t *testing.T) {
	tr := newTrail(3)
	for i := 1; i <= 5; i++ {
		tr.push(float64(i), float64(i*10))
		if len(tr.pts) > 3 {
			t.Fatalf("trail grew past capacity: %d", len(tr.pts))
		}
	}
	if len(tr.pts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(tr.pts))
	}
	if tr.pts[0].x != 3 {
		t.Errorf("oldest point should be x=3, got %v", tr.pts[0].x)
	}
	if tr.head().x != 5 {
		t.Errorf("head should be x=5, got %v", tr.head().x)
	}
}

func TestTrailAlphaScalesWithLife(t *testing.T) {
	tr := newTrail(4)
	for i := 0; i < 4; i++ {
		tr.push(float64(i), 0)
	}
	tr.refreshAlpha(0.8)

	for i := range tr.pts {
		want := float64(i) / 4 * 0.8
		if math.Abs(tr.pts[i].alpha-want) > 1e-12 {
			t.Errorf("point %d alpha = %v, want %v", i, tr.pts[i].alpha, want)
		}
		if i > 0 && tr.pts[i].alpha < tr.pts[i-1].alpha {
			t.Errorf("alpha decreased from index %d to %d", i-1, i)
		}
	}
}
