package game

import (
	"math"
	"testing"

	"github.com/iburimskiy/pulse-visualization/internal/config"
)

// seqRand feeds a fixed cycle of values so trajectories are reproducible.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// midRand keeps every range draw at its midpoint: zero heading
// perturbation, no branch spawns (0.5 >= default branchChance).
func midRand() *seqRand { return &seqRand{vals: []float64{0.5}} }

func testPulse(x, y, heading, speed float64) *pulse {
	return &pulse{
		x: x, y: y,
		heading:      heading,
		speed:        speed,
		life:         1,
		hue:          290,
		thickness:    1,
		trail:        newTrail(8),
		branchChance: config.BranchChance,
	}
}

func TestPulseAdvancesAlongHeading(t *testing.T) {
	p := testPulse(0, 300, 0, 2)
	if !p.update(midRand(), 800, 600) {
		t.Fatal("in-bounds pulse reported dead")
	}
	if math.Abs(p.x-2) > 1e-6 {
		t.Errorf("x = %v, want ~2", p.x)
	}
	if math.Abs(p.y-300) > 0.13 {
		t.Errorf("y = %v, want ~300", p.y)
	}
}

func TestPulseLifeStableInBounds(t *testing.T) {
	p := testPulse(100, 300, 0, 1.5)
	r := midRand()
	for i := 0; i < 50; i++ {
		p.update(r, 800, 600)
	}
	if p.life != 1 {
		t.Errorf("in-bounds pulse lost life: %v", p.life)
	}
}

func TestPulseDecaysPastMargin(t *testing.T) {
	p := testPulse(860, 300, 0, 2) // 60 past the right edge of an 800-wide surface
	r := midRand()

	if !p.update(r, 800, 600) {
		t.Fatal("pulse died on first out-of-bounds tick")
	}
	if math.Abs(p.life-0.95) > 1e-9 {
		t.Errorf("life after one tick = %v, want 0.95", p.life)
	}

	alive := true
	for i := 0; i < 19; i++ {
		alive = p.update(r, 800, 600)
	}
	if alive {
		t.Errorf("pulse still alive after 20 out-of-bounds ticks, life = %v", p.life)
	}
	if p.life > lifeEps {
		t.Errorf("life = %v, want <= 0", p.life)
	}
}

func TestPulseTrailBounded(t *testing.T) {
	p := testPulse(400, 300, 0, 2)
	p.trail = newTrail(6)
	r := midRand()
	for i := 0; i < 100; i++ {
		p.update(r, 800, 600)
		if len(p.trail.pts) > 6 {
			t.Fatalf("trail length %d exceeds capacity after update %d", len(p.trail.pts), i)
		}
	}
}

func TestPulseTrailAlphaMonotone(t *testing.T) {
	p := testPulse(400, 300, 0, 2)
	r := midRand()
	for i := 0; i < 10; i++ {
		p.update(r, 800, 600)
	}
	pts := p.trail.pts
	for i := 1; i < len(pts); i++ {
		if pts[i].alpha < pts[i-1].alpha {
			t.Errorf("alpha decreased at index %d: %v -> %v", i, pts[i-1].alpha, pts[i].alpha)
		}
	}
	n := len(pts)
	want := float64(n-1) / float64(n) * p.life
	if math.Abs(pts[n-1].alpha-want) > 1e-12 {
		t.Errorf("newest alpha = %v, want %v", pts[n-1].alpha, want)
	}
}

func TestBranchCapHolds(t *testing.T) {
	p := testPulse(400, 300, 0, 2)
	p.branchChance = 1
	r := midRand()

	p.update(r, 800, 600)
	p.update(r, 800, 600)
	if len(p.branches) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(p.branches))
	}

	p.update(r, 800, 600)
	if len(p.branches) != 2 {
		t.Errorf("branch cap breached: %d branches", len(p.branches))
	}
}

func TestBranchDecaysAndDies(t *testing.T) {
	p := testPulse(400, 300, 0, 2)
	p.branchChance = 1
	r := midRand()

	p.update(r, 800, 600)
	if len(p.branches) != 1 {
		t.Fatalf("expected 1 branch after forced spawn, got %d", len(p.branches))
	}
	b := p.branches[0]
	if b.speed != p.speed*config.BranchSpeedMul {
		t.Errorf("branch speed = %v, want %v", b.speed, p.speed*config.BranchSpeedMul)
	}
	p.branchChance = 0

	prev := b.life
	updates := 1
	for len(p.branches) > 0 {
		p.update(r, 800, 600)
		updates++
		if b.life >= prev {
			t.Fatalf("branch life did not decrease: %v -> %v", prev, b.life)
		}
		prev = b.life
		if len(b.trail.pts) > config.BranchTrail {
			t.Fatalf("branch trail length %d exceeds %d", len(b.trail.pts), config.BranchTrail)
		}
		if updates > 30 {
			t.Fatal("branch outlived its decay budget")
		}
	}
	if updates > 24 {
		t.Errorf("branch took %d updates to die, want <= 24", updates)
	}
}
