package game

import (
	"math"

	"github.com/iburimskiy/pulse-visualization/internal/config"
)

// randSource abstracts the entropy behind every stochastic decision so
// trajectories can be driven by a fixed sequence in tests.
type randSource interface {
	Float64() float64
}

func rangeF(r randSource, min, max float64) float64 {
	return min + (max-min)*r.Float64()
}

// lifeEps absorbs float drift from repeated fixed-step decrements so a
// fully decayed pulse or branch reads as dead on the expected frame.
const lifeEps = 1e-9

// branch is a short-lived secondary trajectory forked off a pulse. Unlike
// its parent it decays every frame no matter where it is, and it never
// forks again.
type branch struct {
	x, y    float64
	heading float64
	speed   float64
	life    float64
	trail   *trail
}

// pulse is a primary signal traveling across the surface: a random-walk
// trajectory with a bounded fading trail and up to two live branches.
type pulse struct {
	x, y      float64
	heading   float64
	speed     float64
	life      float64
	hue       float64
	thickness float64

	trail        *trail
	branches     []*branch
	branchChance float64
}

// newPulse spawns a pulse at a random point on one of the four edges of the
// w x h surface, heading roughly inward.
func newPulse(r randSource, w, h float64) *pulse {
	var x, y, base float64
	switch int(r.Float64() * 4) {
	case 0: // left edge
		x, y, base = 0, r.Float64()*h, 0
	case 1: // right edge
		x, y, base = w, r.Float64()*h, math.Pi
	case 2: // top edge
		x, y, base = r.Float64()*w, 0, math.Pi/2
	default: // bottom edge
		x, y, base = r.Float64()*w, h, -math.Pi / 2
	}

	trailCap := config.MinTrail + int(r.Float64()*float64(config.MaxTrail-config.MinTrail+1))
	return &pulse{
		x:            x,
		y:            y,
		heading:      base + rangeF(r, -config.EdgeSpread, config.EdgeSpread),
		speed:        rangeF(r, config.MinSpeed, config.MaxSpeed),
		life:         1,
		hue:          rangeF(r, config.MinHue, config.MaxHue),
		thickness:    rangeF(r, config.MinThickness, config.MaxThickness),
		trail:        newTrail(trailCap),
		branchChance: config.BranchChance,
	}
}

// update advances the pulse by one frame and reports whether it is still
// alive. Life only starts draining once the pulse has drifted past the
// surface margin; it never recovers.
func (p *pulse) update(r randSource, w, h float64) bool {
	p.heading += rangeF(r, -config.TurnJitter, config.TurnJitter)
	p.x += math.Cos(p.heading) * p.speed
	p.y += math.Sin(p.heading) * p.speed

	p.trail.push(p.x, p.y)
	p.trail.refreshAlpha(p.life)

	if len(p.branches) < config.MaxBranches && r.Float64() < p.branchChance {
		p.branches = append(p.branches, &branch{
			x:       p.x,
			y:       p.y,
			heading: p.heading + rangeF(r, -config.BranchSpread, config.BranchSpread),
			speed:   p.speed * config.BranchSpeedMul,
			life:    config.BranchLife,
			trail:   newTrail(config.BranchTrail),
		})
	}

	alive := p.branches[:0]
	for _, b := range p.branches {
		b.heading += rangeF(r, -config.BranchTurn, config.BranchTurn)
		b.x += math.Cos(b.heading) * b.speed
		b.y += math.Sin(b.heading) * b.speed
		b.trail.push(b.x, b.y)
		b.life -= config.BranchLifeDecay
		if b.life > lifeEps {
			alive = append(alive, b)
		}
	}
	p.branches = alive

	m := float64(config.BoundsMargin)
	if p.x < -m || p.x > w+m || p.y < -m || p.y > h+m {
		p.life -= config.LifeDecay
	}
	return p.life > lifeEps
}
