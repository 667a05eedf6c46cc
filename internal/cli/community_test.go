package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "community", "-o", "json")
	require.NoError(t, err)

	var result CommunityResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Groups, 3)
	require.Len(t, result.Leaderboard, 5)

	// Leaderboard comes back ranked, top saver first.
	assert.Equal(t, 1, result.Leaderboard[0].Rank)
	assert.Equal(t, "Aiko N.", result.Leaderboard[0].Name)
	assert.Equal(t, 1505, result.Leaderboard[0].WaterSaved)
}

func TestCommunityPlainOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "community")
	require.NoError(t, err)

	assert.Contains(t, out, "Community Groups")
	assert.Contains(t, out, "Green Valley Society")
	assert.Contains(t, out, "Leaderboard")

	// Aiko leads, listed before the tied pair.
	aiko := strings.Index(out, "Aiko N.")
	priya := strings.Index(out, "Priya S.")
	require.GreaterOrEqual(t, aiko, 0)
	require.GreaterOrEqual(t, priya, 0)
	assert.Less(t, aiko, priya)
}
