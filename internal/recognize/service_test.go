package recognize

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waterwise/waterwise/internal/catalog"
)

func TestStaticClassifier(t *testing.T) {
	c := NewStaticClassifier()

	t.Run("known keyword", func(t *testing.T) {
		got, err := c.Classify(context.Background(), "/photos/red-apple.jpg")
		require.NoError(t, err)

		require.NotEmpty(t, got)
		assert.Equal(t, "Granny Smith apple", got[0].Label)
	})

	t.Run("unknown filename degrades to low-confidence label", func(t *testing.T) {
		got, err := c.Classify(context.Background(), "/photos/mystery.png")
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, "unknown object", got[0].Label)
		assert.Less(t, got[0].Score, 0.5)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Classify(ctx, "apple.jpg")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestServiceAnalyze(t *testing.T) {
	t.Run("trims and orders by score", func(t *testing.T) {
		svc := NewService(ClassifierFunc(func(context.Context, string) ([]Classification, error) {
			return []Classification{
				{Label: "b", Score: 0.3},
				{Label: "a", Score: 0.9},
				{Label: "c", Score: 0.2},
				{Label: "d", Score: 0.1},
			}, nil
		}))

		got, err := svc.Analyze(context.Background(), "x.jpg")
		require.NoError(t, err)

		require.Len(t, got, DefaultTopN)
		assert.Equal(t, "a", got[0].Label)
		assert.Equal(t, "b", got[1].Label)
		assert.Equal(t, "c", got[2].Label)
	})

	t.Run("empty result is an error", func(t *testing.T) {
		svc := NewService(ClassifierFunc(func(context.Context, string) ([]Classification, error) {
			return nil, nil
		}))

		_, err := svc.Analyze(context.Background(), "x.jpg")
		assert.ErrorIs(t, err, ErrNoClassification)
	})

	t.Run("classifier error propagates", func(t *testing.T) {
		wantErr := errors.New("camera on fire")
		svc := NewService(ClassifierFunc(func(context.Context, string) ([]Classification, error) {
			return nil, wantErr
		}))

		_, err := svc.Analyze(context.Background(), "x.jpg")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestServiceFootprint(t *testing.T) {
	t.Run("best label resolves through factor table", func(t *testing.T) {
		svc := NewService(NewStaticClassifier())

		classifications, result, err := svc.Footprint(context.Background(), "granny-apple.jpg", 2, "")
		require.NoError(t, err)

		require.NotEmpty(t, classifications)
		assert.Equal(t, "apple", result.Item)
		assert.InDelta(t, 250.0, result.WaterLiters, 0.0001)
		assert.False(t, result.Fallback)
	})

	t.Run("unrecognized label falls back to flat factor", func(t *testing.T) {
		svc := NewService(NewStaticClassifier())

		_, result, err := svc.Footprint(context.Background(), "mystery.png", 1, "")
		require.NoError(t, err)

		assert.True(t, result.Fallback)
		assert.InDelta(t, float64(catalog.FallbackLitersPerUnit), result.WaterLiters, 0.0001)
	})

	t.Run("invalid quantity surfaces", func(t *testing.T) {
		svc := NewService(NewStaticClassifier())

		_, _, err := svc.Footprint(context.Background(), "apple.jpg", 0, "")
		assert.ErrorIs(t, err, catalog.ErrInvalidQuantity)
	})
}
