package planner

import (
	"math"

	"github.com/prepforge/quanta/pkg/models"
)

// phaseFor buckets a student by how many sessions they have been served
// or completed. Planned-only sessions do not count.
func phaseFor(servedCount, aCutoff, bCutoff int) models.Phase {
	switch {
	case servedCount < aCutoff:
		return models.PhaseA
	case servedCount < bCutoff:
		return models.PhaseB
	default:
		return models.PhaseC
	}
}

// mixPercents is the difficulty split per phase, ordered Easy, Medium, Hard.
var mixPercents = map[models.Phase][3]float64{
	models.PhaseA: {0.20, 0.75, 0.05},
	models.PhaseB: {0.20, 0.50, 0.30},
	models.PhaseC: {0.15, 0.55, 0.30},
}

// mixFor converts the phase percentages into whole-question targets using
// largest-remainder apportionment, so the targets always sum to size.
// Remainder ties go to the band with the larger target share.
func mixFor(phase models.Phase, size int) models.BandCounts {
	pct := mixPercents[phase]
	var counts [3]int
	var fracs [3]float64
	total := 0
	for i := range pct {
		exact := pct[i] * float64(size)
		counts[i] = int(math.Floor(exact + 1e-9))
		fracs[i] = exact - float64(counts[i])
		total += counts[i]
	}
	for total < size {
		best := -1
		for i := range pct {
			switch {
			case best == -1:
				best = i
			case fracs[i] > fracs[best]+1e-9:
				best = i
			case math.Abs(fracs[i]-fracs[best]) <= 1e-9 && pct[i] > pct[best]:
				best = i
			}
		}
		counts[best]++
		fracs[best] = -1
		total++
	}
	return models.BandCounts{Easy: counts[0], Medium: counts[1], Hard: counts[2]}
}
