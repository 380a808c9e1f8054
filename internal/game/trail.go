package game

// point is a sampled trail position. Coordinates are fixed once pushed;
// alpha is recomputed every frame from the point's index and the owner's
// remaining life.
type point struct {
	x, y  float64
	alpha float64
}

// trail is a bounded, oldest-first history of recent positions. When a push
// exceeds capacity the oldest point is evicted.
type trail struct {
	pts []point
	max int
}

func newTrail(capacity int) *trail {
	return &trail{pts: make([]point, 0, capacity), max: capacity}
}

func (t *trail) push(x, y float64) {
	if len(t.pts) >= t.max {
		t.pts = t.pts[1:]
	}
	t.pts = append(t.pts, point{x: x, y: y, alpha: 1})
}

// refreshAlpha fades the trail toward its oldest end, scaled by the owner's
// life: point i of n gets alpha (i/n)*life.
func (t *trail) refreshAlpha(life float64) {
	n := float64(len(t.pts))
	for i := range t.pts {
		t.pts[i].alpha = float64(i) / n * life
	}
}

func (t *trail) head() point {
	return t.pts[len(t.pts)-1]
}
