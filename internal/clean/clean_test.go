package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		// Watch markers
		{"AA- *+", "AA-"},
		{"BB+ *-", "BB+"},
		{"BBB *+", "BBB"},
		{"A *", "A"},

		// Parenthetical outlooks
		{"AA- (Developing)", "AA-"},
		{"CCC+ (CwPositive)", "CCC+"},
		{"BBB- (CwNegative)", "BBB-"},

		// Unsolicited marker, no space
		{"BB+u", "BB+"},
		{"Au", "A"},
		{"AAAU", "AAA"},

		// Public-information prefix
		{"(P)Baa1", "Baa1"},
		{"(P)BBB+", "BBB+"},

		// Combinations
		{"(P)BB+u *-", "BB+"},
		{"Baa1u (Developing)", "Baa1"},

		// Already clean
		{"AAA", "AAA"},
		{"AA-", "AA-"},
		{"R-1 M", "R-1 M"},
		{"NP", "NP"},

		// Missing stays missing
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.raw), "clean(%q)", tt.raw)
	}
}

func TestRatingIdempotent(t *testing.T) {
	inputs := []string{
		"AA- *+", "BB+u", "(P)Baa1", "CCC+ (CwPositive)", "AAA", "", "R-1 M",
	}
	for _, raw := range inputs {
		once := Rating(raw)
		assert.Equal(t, once, Rating(once), "clean(clean(%q))", raw)
	}
}

func TestRatings(t *testing.T) {
	got := Ratings([]string{"BB+ *-", "", "AA- (Developing)", "BB+u"})
	assert.Equal(t, []string{"BB+", "", "AA-", "BB+"}, got)
}
