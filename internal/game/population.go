package game

import "github.com/iburimskiy/pulse-visualization/internal/config"

// population owns the live set of pulses and the spawn policy that keeps
// the concurrent count near its target band.
type population struct {
	pulses []*pulse
	rng    randSource
}

func newPopulation(r randSource) *population {
	return &population{rng: r}
}

func (pop *population) populate(n int, w, h float64) {
	pop.pulses = make([]*pulse, n)
	for i := range pop.pulses {
		pop.pulses[i] = newPulse(pop.rng, w, h)
	}
}

// tick advances every pulse. A dead pulse is replaced in place by a fresh
// spawn, so deaths alone never shrink the population.
func (pop *population) tick(w, h float64) {
	for i, p := range pop.pulses {
		if !p.update(pop.rng, w, h) {
			pop.pulses[i] = newPulse(pop.rng, w, h)
		}
	}
}

// maybeSpawn occasionally grows the population toward the cap. It runs
// independently of death respawns; that is how the band grows from the
// initial count up toward the cap.
func (pop *population) maybeSpawn(w, h float64) {
	if len(pop.pulses) < config.MaxPulses && pop.rng.Float64() < config.SpawnChance {
		pop.pulses = append(pop.pulses, newPulse(pop.rng, w, h))
	}
}

// branchCount totals live branches across all pulses; it drives the
// crackle synth intensity.
func (pop *population) branchCount() int {
	n := 0
	for _, p := range pop.pulses {
		n += len(p.branches)
	}
	return n
}
