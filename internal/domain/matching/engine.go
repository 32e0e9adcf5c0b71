package matching

import (
	"math"
	"sort"

	"mentorlink/internal/domain/user"

	"github.com/google/uuid"
)

// Weights splits the composite score between skill overlap and interest
// overlap. They are expected to sum to 1.
type Weights struct {
	Skill    float64
	Interest float64
}

var DefaultWeights = Weights{Skill: 0.7, Interest: 0.3}

type Candidate struct {
	User  user.User
	Score int
}

// Rank scores every candidate of the opposite role against the viewer and
// returns them sorted by score descending. Ties keep the pool order. The
// viewer itself is dropped by id regardless of role. Zero-score candidates
// stay in the result; hiding them is a presentation decision.
func Rank(viewer user.User, pool []user.User, w Weights) []Candidate {
	viewerSkills := toSet(viewer.Skills)
	viewerTags := toSet(viewer.InterestTags())

	out := make([]Candidate, 0, len(pool))
	for _, cand := range pool {
		if cand.ID == viewer.ID && cand.ID != uuid.Nil {
			continue
		}
		if cand.Role == viewer.Role {
			continue
		}
		out = append(out, Candidate{
			User:  cand,
			Score: Score(viewer, cand, w, viewerSkills, viewerTags),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Score computes round(100 * (w.Skill*skillScore + w.Interest*interestScore)).
// Each sub-score is the overlap with the viewer divided by the candidate's own
// set size, 0 when the candidate's set is empty. viewerSkills and viewerTags
// may be nil; they exist so Rank can build them once per pool.
func Score(viewer, cand user.User, w Weights, viewerSkills, viewerTags map[string]struct{}) int {
	if viewerSkills == nil {
		viewerSkills = toSet(viewer.Skills)
	}
	if viewerTags == nil {
		viewerTags = toSet(viewer.InterestTags())
	}

	skillScore := overlapRatio(cand.Skills, viewerSkills)
	interestScore := overlapRatio(cand.InterestTags(), viewerTags)

	raw := 100 * (w.Skill*skillScore + w.Interest*interestScore)
	score := int(math.Round(raw))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// overlapRatio is |candItems ∩ viewerSet| / |candItems|. Duplicate candidate
// items are counted once.
func overlapRatio(candItems []string, viewerSet map[string]struct{}) float64 {
	cand := toSet(candItems)
	if len(cand) == 0 {
		return 0
	}
	hits := 0
	for item := range cand {
		if _, ok := viewerSet[item]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(cand))
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
