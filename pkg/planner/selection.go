package planner

import (
	"sort"

	"github.com/prepforge/quanta/pkg/models"
)

// pick wraps a chosen candidate with the slot it fills. Wrapping keeps the
// shared candidate values immutable: a Medium question backfilling a Hard
// slot stays Medium everywhere except the slot record.
type pick struct {
	cand        models.Candidate
	slotBand    models.Band
	coverageNew bool
	backfilled  bool
}

// fillOrder is the band sequence for quota filling: the scarcest bands
// claim their candidates before Medium soaks up the shared subcategories.
var fillOrder = []models.Band{models.BandHard, models.BandEasy, models.BandMedium}

// donorOrder is the band sequence backfill borrows from when a planned
// band runs dry.
var donorOrder = []models.Band{models.BandMedium, models.BandEasy, models.BandHard}

var relaxationOrder = []models.RelaxationLevel{
	models.RelaxStrict,
	models.RelaxRelaxed,
	models.RelaxUnbounded,
}

type selector struct {
	cfg    Config
	phase  models.Phase
	pool   *models.CandidatePool
	quotas map[string]int

	// weakness maps "subcategory|type" (and "subcategory|" aggregates) to
	// a priority: 0 needs focus, 1 on track, 2 mastered.
	weakness map[string]int
	seen     map[string]int

	picks      []pick
	used       map[string]struct{}
	perSub     map[string]int
	perPair    map[string]int
	perCat     map[string]int
	level      models.RelaxationLevel
	backfilled map[string]models.BackfillNote
	notes      []string
}

func newSelector(cfg Config, phase models.Phase, in Input, quotas map[string]int) *selector {
	weakness := make(map[string]int, len(in.Mastery))
	for _, m := range in.Mastery {
		weakness[PairKey(m.Subcategory, m.TypeOfQuestion)] = labelPriority(m.Label())
	}
	return &selector{
		cfg:        cfg,
		phase:      phase,
		pool:       in.Pool,
		quotas:     quotas,
		weakness:   weakness,
		seen:       in.Seen,
		used:       make(map[string]struct{}, cfg.PackSize),
		perSub:     make(map[string]int),
		perPair:    make(map[string]int),
		perCat:     make(map[string]int),
		level:      models.RelaxStrict,
		backfilled: make(map[string]models.BackfillNote),
	}
}

func labelPriority(l models.MasteryLabel) int {
	switch l {
	case models.LabelNeedsFocus:
		return 0
	case models.LabelOnTrack:
		return 1
	default:
		return 2
	}
}

// run executes the selection loop: each band fills its target under strict
// constraints, then backfill covers the shortfall.
func (s *selector) run(mix models.BandCounts) {
	for _, band := range fillOrder {
		want := mix.Get(band)
		got := 0
		for _, c := range s.orderBand(band) {
			if got >= want {
				break
			}
			if !s.admit(c, models.RelaxStrict) {
				continue
			}
			s.take(c, band, false)
			got++
		}
	}
	s.backfill(mix)
}

// backfill fills short slots from donor bands, widening the subcategory
// caps step by step. Category quotas hold until the unbounded level, the
// last resort before an under-sized pack.
func (s *selector) backfill(mix models.BandCounts) {
	for _, level := range relaxationOrder {
		if s.total() >= s.cfg.PackSize {
			return
		}
		for _, band := range fillOrder {
			short := mix.Get(band) - s.slotCount(band)
			if short <= 0 {
				continue
			}
			for _, donor := range donorOrder {
				if short <= 0 {
					break
				}
				for _, c := range s.orderBand(donor) {
					if short <= 0 {
						break
					}
					if !s.admit(c, level) {
						continue
					}
					reason := "planned_band_exhausted"
					if donor == band {
						reason = "subcategory_caps_relaxed"
					}
					s.backfilled[c.QuestionID] = models.BackfillNote{
						Planned: band,
						Used:    donor,
						Reason:  reason,
					}
					s.take(c, band, true)
					s.bumpLevel(level)
					short--
				}
			}
		}
	}
}

// repairDiversity swaps over-represented picks for unused subcategories
// until the distinct-subcategory floor holds or the pool has nothing new
// to offer.
func (s *selector) repairDiversity() {
	for range s.picks {
		subs := make(map[string]int)
		for _, pk := range s.picks {
			subs[pk.cand.Subcategory]++
		}
		if len(subs) >= s.cfg.MinDistinctSubcategories {
			return
		}

		repl, ok := s.findFreshSubcategory(subs)
		if !ok {
			s.notes = append(s.notes, "distinct subcategory floor unattainable from pool")
			return
		}
		victim := s.pickVictim(subs, repl.Band)
		if victim < 0 {
			return
		}

		old := s.picks[victim]
		s.perSub[old.cand.Subcategory]--
		s.perPair[PairKey(old.cand.Subcategory, old.cand.TypeOfQuestion)]--
		s.perCat[old.cand.Category]--
		delete(s.backfilled, old.cand.QuestionID)

		s.used[repl.QuestionID] = struct{}{}
		s.perSub[repl.Subcategory]++
		s.perPair[PairKey(repl.Subcategory, repl.TypeOfQuestion)]++
		s.perCat[repl.Category]++
		if repl.Band != old.slotBand {
			s.backfilled[repl.QuestionID] = models.BackfillNote{
				Planned: old.slotBand,
				Used:    repl.Band,
				Reason:  "diversity_repair",
			}
		}
		s.picks[victim] = pick{
			cand:        repl,
			slotBand:    old.slotBand,
			coverageNew: s.isNew(repl),
			backfilled:  repl.Band != old.slotBand,
		}
		s.notes = append(s.notes, "diversity repair: swapped "+old.cand.Subcategory+" for "+repl.Subcategory)
	}
}

// findFreshSubcategory returns the best unused candidate whose subcategory
// is not yet in the pack.
func (s *selector) findFreshSubcategory(subs map[string]int) (models.Candidate, bool) {
	for _, donor := range donorOrder {
		for _, c := range s.orderBand(donor) {
			if _, represented := subs[c.Subcategory]; represented {
				continue
			}
			return c, true
		}
	}
	return models.Candidate{}, false
}

// pickVictim chooses the pick to evict: the latest pick from the heaviest
// subcategory, preferring one whose band matches the replacement so the
// achieved mix survives the swap.
func (s *selector) pickVictim(subs map[string]int, replBand models.Band) int {
	heavy, heavyCount := "", 0
	names := make([]string, 0, len(subs))
	for sub := range subs {
		names = append(names, sub)
	}
	sort.Strings(names)
	for _, sub := range names {
		if subs[sub] > heavyCount {
			heavy, heavyCount = sub, subs[sub]
		}
	}
	for i := len(s.picks) - 1; i >= 0; i-- {
		if s.picks[i].cand.Subcategory == heavy && s.picks[i].cand.Band == replBand {
			return i
		}
	}
	for i := len(s.picks) - 1; i >= 0; i-- {
		if s.picks[i].cand.Subcategory == heavy {
			return i
		}
	}
	return -1
}

// orderBand returns the band's unused candidates in selection priority
// order. Phase A puts coverage-new pairs first; ties order by weakness,
// exam frequency, type token, then the seeded order key.
func (s *selector) orderBand(band models.Band) []models.Candidate {
	src := s.pool.BandSlice(band)
	cands := make([]models.Candidate, 0, len(src))
	for _, c := range src {
		if _, taken := s.used[c.QuestionID]; taken {
			continue
		}
		cands = append(cands, c)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if s.phase == models.PhaseA {
			an, bn := s.isNew(a), s.isNew(b)
			if an != bn {
				return an
			}
		}
		wa, wb := s.rankWeakness(a, band), s.rankWeakness(b, band)
		if wa != wb {
			return wa < wb
		}
		if a.PYQFrequencyScore != b.PYQFrequencyScore {
			return a.PYQFrequencyScore > b.PYQFrequencyScore
		}
		if a.TypeOfQuestion != b.TypeOfQuestion {
			return a.TypeOfQuestion < b.TypeOfQuestion
		}
		if a.OrderKey != b.OrderKey {
			return a.OrderKey < b.OrderKey
		}
		return a.QuestionID < b.QuestionID
	})
	return cands
}

// rankWeakness orders weak areas first, except Phase B Hard slots which
// stretch the student's strong areas instead.
func (s *selector) rankWeakness(c models.Candidate, band models.Band) int {
	p := s.weaknessOf(c)
	if s.phase == models.PhaseB && band == models.BandHard {
		return 2 - p
	}
	return p
}

func (s *selector) weaknessOf(c models.Candidate) int {
	if p, ok := s.weakness[PairKey(c.Subcategory, c.TypeOfQuestion)]; ok {
		return p
	}
	if p, ok := s.weakness[PairKey(c.Subcategory, "")]; ok {
		return p
	}
	return 0
}

func (s *selector) isNew(c models.Candidate) bool {
	return s.seen[PairKey(c.Subcategory, c.TypeOfQuestion)] == 0
}

// admit applies the subcategory and (subcategory, type) caps for the
// relaxation level and the category quotas. The unbounded level lifts
// everything.
func (s *selector) admit(c models.Candidate, level models.RelaxationLevel) bool {
	if _, taken := s.used[c.QuestionID]; taken {
		return false
	}
	pair := PairKey(c.Subcategory, c.TypeOfQuestion)
	switch level {
	case models.RelaxStrict:
		if s.perSub[c.Subcategory] >= s.cfg.MaxPerSubcategoryStrict {
			return false
		}
		if s.perPair[pair] >= s.cfg.MaxPerTypeStrict {
			return false
		}
	case models.RelaxRelaxed:
		if s.perSub[c.Subcategory] >= s.cfg.MaxPerSubcategoryRelaxed {
			return false
		}
		if s.perPair[pair] >= s.cfg.MaxPerTypeRelaxed {
			return false
		}
	case models.RelaxUnbounded:
		return true
	}
	if q, ok := s.quotas[c.Category]; ok && s.perCat[c.Category] >= q {
		return false
	}
	return true
}

func (s *selector) take(c models.Candidate, slotBand models.Band, backfilled bool) {
	s.picks = append(s.picks, pick{
		cand:        c,
		slotBand:    slotBand,
		coverageNew: s.isNew(c),
		backfilled:  backfilled,
	})
	s.used[c.QuestionID] = struct{}{}
	s.perSub[c.Subcategory]++
	s.perPair[PairKey(c.Subcategory, c.TypeOfQuestion)]++
	s.perCat[c.Category]++
}

func (s *selector) total() int {
	return len(s.picks)
}

func (s *selector) slotCount(band models.Band) int {
	n := 0
	for _, pk := range s.picks {
		if pk.slotBand == band {
			n++
		}
	}
	return n
}

func (s *selector) bumpLevel(level models.RelaxationLevel) {
	if levelRank(level) > levelRank(s.level) {
		s.level = level
	}
}

func levelRank(l models.RelaxationLevel) int {
	switch l {
	case models.RelaxRelaxed:
		return 1
	case models.RelaxUnbounded:
		return 2
	default:
		return 0
	}
}
