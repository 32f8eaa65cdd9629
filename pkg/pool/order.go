package pool

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/prepforge/quanta/pkg/models"
)

// Seed builds the per-pack ordering seed. The same student and sequence
// number always produce the same seed, so replanning a pack yields the
// identical candidate order.
func Seed(studentID string, sessSeq int) string {
	return studentID + ":" + strconv.Itoa(sessSeq)
}

// OrderKey ranks a question within a seeded pool. Two independent xxhash
// digests are combined so that neither the question id alone nor the seed
// alone determines the ordering.
func OrderKey(questionID, seed string) uint64 {
	return xxhash.Sum64String(questionID) ^ xxhash.Sum64String(seed)
}

// rank assigns order keys in place and sorts ascending, breaking key
// collisions by question id so the order is total.
func rank(cands []models.Candidate, seed string) {
	for i := range cands {
		cands[i].OrderKey = OrderKey(cands[i].QuestionID, seed)
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].OrderKey != cands[j].OrderKey {
			return cands[i].OrderKey < cands[j].OrderKey
		}
		return cands[i].QuestionID < cands[j].QuestionID
	})
}
