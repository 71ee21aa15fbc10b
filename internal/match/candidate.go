package match

import (
	"sort"

	"import-planner/internal/preset"
)

// Candidate is a local preset scored against a target name.
type Candidate struct {
	Preset preset.Descriptor
	// Score is the name similarity in [0, 1].
	Score float64
}

// CandidateList is ordered by descending score.
type CandidateList []Candidate

// RankByName scores every preset against target and returns them best
// first. Equal scores keep name order.
func RankByName(target string, presets []preset.Descriptor) CandidateList {
	if target == "" {
		return nil
	}

	candidates := make(CandidateList, 0, len(presets))
	for _, p := range presets {
		candidates = append(candidates, Candidate{Preset: p, Score: NameSimilarity(target, p.Name)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}

		return candidates[i].Preset.Name < candidates[j].Preset.Name
	})

	return candidates
}

// Best returns the top candidate.
func (c CandidateList) Best() (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}

	return c[0], true
}

// IsAmbiguous reports whether the top two scores are closer than threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// HighConfidence returns the top candidate when it scores at least minScore
// and leads the runner-up by at least minGap. A unique exact name match
// wins regardless of the gap.
func (c CandidateList) HighConfidence(minScore, minGap float64) (Candidate, bool) {
	best, ok := c.Best()
	if !ok || best.Score < minScore {
		return Candidate{}, false
	}

	exact := best.Score == 1 && (len(c) == 1 || c[1].Score < 1)
	if !exact && c.IsAmbiguous(minGap) {
		return Candidate{}, false
	}

	return best, true
}
