package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupProgress(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		want  float64
	}{
		{"halfway", Group{WaterSaved: 10000, Goal: 20000}, 50},
		{"over goal caps at 100", Group{WaterSaved: 31000, Goal: 30000}, 100},
		{"zero goal yields zero", Group{WaterSaved: 500, Goal: 0}, 0},
		{"nothing saved", Group{WaterSaved: 0, Goal: 1000}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.group.Progress(), 0.0001)
		})
	}
}

func TestRank(t *testing.T) {
	entries := SampleLeaderboard()
	ranked := Rank(entries)

	require.Len(t, ranked, len(entries))

	// Highest savings first, ranks assigned 1..n.
	assert.Equal(t, "Aiko N.", ranked[0].Name)
	assert.Equal(t, 1, ranked[0].Rank)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i].WaterSaved, ranked[i-1].WaterSaved)
		assert.Equal(t, i+1, ranked[i].Rank)
	}

	// Stable: Priya precedes Fatima at equal savings (input order).
	assert.Equal(t, "Priya S.", ranked[1].Name)
	assert.Equal(t, "Fatima R.", ranked[2].Name)

	// Input untouched.
	assert.Zero(t, entries[0].Rank)
	assert.Equal(t, "Priya S.", entries[0].Name)
}
