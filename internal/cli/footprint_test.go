package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waterwise/waterwise/internal/catalog"
)

func TestFootprintCalcKnownItem(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "footprint", "calc", "apple", "--quantity", "3", "-o", "json")
	require.NoError(t, err)

	var result footprintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, "apple", result.Footprint.Item)
	assert.InDelta(t, 375.0, result.Footprint.WaterLiters, 0.001)
	assert.False(t, result.Footprint.Fallback)
	assert.Empty(t, result.Classifications)
}

func TestFootprintCalcFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "footprint", "calc", "spaceship", "--quantity", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "spaceship")
	assert.Contains(t, out, "2,000 L")
	assert.Contains(t, out, "generic factor")
}

func TestFootprintCalcInvalidQuantity(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCmd(t, "footprint", "calc", "apple", "--quantity", "0")
	assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)
}

func TestFootprintAnalyze(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "footprint", "analyze", "--image", "apple.jpg", "--quantity", "2", "-o", "json")
	require.NoError(t, err)

	var result footprintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.NotEmpty(t, result.Classifications)
	assert.Equal(t, "Granny Smith apple", result.Classifications[0].Label)
	assert.Equal(t, "apple", result.Footprint.Item)
	assert.InDelta(t, 250.0, result.Footprint.WaterLiters, 0.001)
}

func TestFootprintAnalyzeRequiresImage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := runCmd(t, "footprint", "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--image")
}

func TestFootprintAnalyzeUnknownObject(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCmd(t, "footprint", "analyze", "--image", "mystery.jpg", "-o", "json")
	require.NoError(t, err)

	var result footprintOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Footprint.Fallback)
	assert.InDelta(t, 1000.0, result.Footprint.WaterLiters, 0.001)
}
