package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"pla", "pla", 0},
		{"", "abs", 3},
		{"abs", "", 3},
		{"pla", "petg", 3},
		{"kitten", "sitting", 3},
		{"PLA", "pla", 3},
		{"silk", "silky", 1},
		{"grün", "grun", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
			assert.Equal(t, tt.want, Distance(tt.b, tt.a), "distance is symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("pla", "pla"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 1e-9)
	assert.InDelta(t, 0.8, Similarity("silky", "silk"), 1e-9)
}

func TestNameSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, NameSimilarity("Bambu PLA Basic @BBL X1C", "Bambu PLA Basic @BBL X1C"), 1e-9)
	assert.InDelta(t, 1-qualifierPenalty, NameSimilarity("Bambu PLA Basic @BBL X1C", "Bambu PLA Basic"), 1e-9)
	assert.Less(t,
		NameSimilarity("Bambu PLA Basic @BBL X1C", "Bambu PLA Basic @BBL A1"),
		NameSimilarity("Bambu PLA Basic @BBL X1C", "Bambu PLA Basic @BBL X1C"),
		"a different printer qualifier ranks below the exact name")
	assert.InDelta(t, 1.0, NameSimilarity("generic-pla", "Generic PLA"), 1e-9)
	assert.Less(t, NameSimilarity("Generic PLA", "Generic PETG"), 1.0)
}
