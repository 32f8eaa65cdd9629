package planner

import (
	"sort"
	"strconv"

	"github.com/prepforge/quanta/pkg/models"
)

// Fallback builds a seeded-random pack: pool candidates in plain seeded
// order with none of the constraint machinery. It backstops pools that
// cannot support adaptive planning and plans whose persistence failed.
func (p *Planner) Fallback(in Input, reason string) *Plan {
	phase := phaseFor(in.ServedCount, p.cfg.PhaseACutoff, p.cfg.PhaseBCutoff)

	seed := in.StudentID + ":" + strconv.Itoa(in.SessSeq)
	var all []models.Candidate
	report := models.ConstraintReport{
		Phase:           phase,
		SessionType:     models.SessionSimpleRandom,
		Seed:            seed,
		RelaxationLevel: models.RelaxUnbounded,
		FallbackReason:  reason,
	}
	if in.Pool != nil {
		report.Seed = in.Pool.Seed
		report.PoolRung = in.Pool.Rung
		report.PoolSizes = poolSizes(in.Pool)
		report.RecentExcluded = in.Pool.RecentExcluded
		report.RecencyRelaxed = in.Pool.RecencyRelaxed
		report.CooldownRelaxed = in.Pool.CooldownRelaxed
		seed = in.Pool.Seed

		all = make([]models.Candidate, 0, in.Pool.Size())
		for _, b := range models.Bands() {
			all = append(all, in.Pool.BandSlice(b)...)
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].OrderKey != all[j].OrderKey {
				return all[i].OrderKey < all[j].OrderKey
			}
			return all[i].QuestionID < all[j].QuestionID
		})
		if len(all) > p.cfg.PackSize {
			all = all[:p.cfg.PackSize]
		}
	}

	entries := make([]Entry, len(all))
	achieved := models.BandCounts{}
	cats := make(map[string]int)
	subs := make(map[string]int)
	pairs := make(map[string]int)
	for i, c := range all {
		coverageNew := in.Seen[PairKey(c.Subcategory, c.TypeOfQuestion)] == 0
		entries[i] = Entry{
			Candidate:   c,
			Position:    i + 1,
			SlotBand:    c.Band,
			CoverageNew: coverageNew,
		}
		achieved.Add(c.Band, 1)
		cats[c.Category]++
		subs[c.Subcategory]++
		pairs[PairKey(c.Subcategory, c.TypeOfQuestion)]++
		if coverageNew {
			report.CoverageNew++
		} else {
			report.CoverageSeen++
		}
	}
	report.AchievedMix = achieved
	report.CategoryAchieved = cats
	report.SubcategoryDistribution = subs
	report.TypeDistribution = pairs
	report.DistinctSubcategories = len(subs)
	if len(entries) < p.cfg.PackSize {
		report.Note("pool smaller than pack size, serving what exists")
	}

	return &Plan{
		StudentID:   in.StudentID,
		SessSeq:     in.SessSeq,
		Phase:       phase,
		SessionType: models.SessionSimpleRandom,
		Seed:        seed,
		Entries:     entries,
		Report:      report,
	}
}
