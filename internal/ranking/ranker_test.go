package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
	"github.com/m04kA/SMC-IntakeService/pkg/ptr"
)

func candidate(id string, rating *float64, distance float64) domain.Candidate {
	return domain.Candidate{ID: id, Rating: rating, DistanceKm: distance}
}

func ids(list []domain.Candidate) []string {
	out := make([]string, len(list))
	for i, c := range list {
		out[i] = c.ID
	}
	return out
}

func TestRank_Tiers(t *testing.T) {
	input := []domain.Candidate{
		candidate("r5-d10", ptr.Ptr(5.0), 10),
		candidate("r4.5-d1", ptr.Ptr(4.5), 1),
		candidate("r3.5-d2", ptr.Ptr(3.5), 2),
		candidate("r2-d0.5", ptr.Ptr(2.0), 0.5),
		candidate("nil-d5", nil, 5),
	}

	got := Rank(input, 0)

	assert.Equal(t, []string{"r4.5-d1", "r5-d10", "r3.5-d2", "r2-d0.5", "nil-d5"}, ids(got))
	assert.Equal(t, "r5-d10", input[0].ID, "input must stay untouched")
}

func TestRank_TopTierCapped(t *testing.T) {
	input := make([]domain.Candidate, 0, 8)
	for i := 0; i < 7; i++ {
		input = append(input, candidate(fmt.Sprintf("top-%d", i), ptr.Ptr(4.8), float64(7-i)))
	}
	input = append(input, candidate("mid", ptr.Ptr(3.0), 100))

	got := Rank(input, 5)

	assert.Equal(t, []string{"top-6", "top-5", "top-4", "top-3", "top-2", "mid"}, ids(got))
}

func TestRank_LowTierOrdering(t *testing.T) {
	input := []domain.Candidate{
		candidate("r1-d1", ptr.Ptr(1.0), 1),
		candidate("r2.5-d9", ptr.Ptr(2.5), 9),
		candidate("r2.5-d3", ptr.Ptr(2.5), 3),
		candidate("nil-d2", nil, 2),
	}

	got := Rank(input, 5)

	// nil сравнивается по расстоянию; r2.5-d3 и r2.5-d9 - равный рейтинг, по расстоянию
	assert.Equal(t, "r2.5-d3", got[0].ID)
	assert.Equal(t, "r2.5-d9", got[1].ID)
	assert.Len(t, got, 4)
}

func TestRank_LowTierMixedNilOrderFollowsInput(t *testing.T) {
	a := candidate("r2-d5", ptr.Ptr(2.0), 5)
	b := candidate("r1-d1", ptr.Ptr(1.0), 1)
	c := candidate("nil-d3", nil, 3)

	tests := []struct {
		name  string
		input []domain.Candidate
		want  []string
	}{
		{name: "rated first", input: []domain.Candidate{a, b, c}, want: []string{"r2-d5", "r1-d1", "nil-d3"}},
		{name: "rated swapped", input: []domain.Candidate{b, a, c}, want: []string{"r2-d5", "r1-d1", "nil-d3"}},
		{name: "nil first", input: []domain.Candidate{c, b, a}, want: []string{"r1-d1", "nil-d3", "r2-d5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				assert.Equal(t, tt.want, ids(Rank(tt.input, 5)))
			}
		})
	}
}

func TestRank_ThreeIsMidTier(t *testing.T) {
	got := Rank([]domain.Candidate{
		candidate("r2.99", ptr.Ptr(2.99), 1),
		candidate("r3", ptr.Ptr(3.0), 50),
		candidate("r4", ptr.Ptr(4.0), 60),
	}, 5)

	assert.Equal(t, []string{"r4", "r3", "r2.99"}, ids(got))
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil, 5))
}

func TestDistance(t *testing.T) {
	// Amsterdam Centraal - Utrecht Centraal ~ 35 km
	d := Distance(52.3791, 4.9003, 52.0894, 5.1101)
	assert.InDelta(t, 35.3, d, 0.5)

	assert.Equal(t, 0.0, Distance(52.0, 5.0, 52.0, 5.0))
}
