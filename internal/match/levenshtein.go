package match

// Distance returns the Levenshtein distance between a and b counted in
// runes. It keeps two rows of the edit matrix sized by the shorter input.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j, cb := range rb {
		curr[0] = j + 1

		for i, ca := range ra {
			cost := 1
			if ca == cb {
				cost = 0
			}

			curr[i+1] = min(prev[i+1]+1, curr[i]+1, prev[i]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Similarity maps Distance into [0, 1], where 1 means equal strings.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}

// qualifierPenalty keeps a match that only agrees once the printer
// qualifiers are dropped below an exact match.
const qualifierPenalty = 0.01

// NameSimilarity compares two preset names after normalization. Names are
// also compared without their printer qualifier; that score is reduced by
// qualifierPenalty, so "PLA @BBL A1" never ties "PLA @BBL X1C" against a
// project naming the X1C variant.
func NameSimilarity(a, b string) float64 {
	full := Similarity(NormalizeName(a), NormalizeName(b))
	base := Similarity(NormalizeBaseName(a), NormalizeBaseName(b)) - qualifierPenalty

	return max(full, base)
}
