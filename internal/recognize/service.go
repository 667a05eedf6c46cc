package recognize

import (
	"context"
	"errors"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/waterwise/waterwise/internal/catalog"
)

// ErrNoClassification indicates the classifier returned no labels at all.
var ErrNoClassification = errors.New("classifier returned no labels")

// Service runs the image-to-footprint workflow: classify, pick a label,
// resolve it against the catalog's factor table.
type Service struct {
	classifier Classifier
	topN       int
}

// NewService creates a Service around the given classifier.
func NewService(classifier Classifier) *Service {
	return &Service{classifier: classifier, topN: DefaultTopN}
}

// Analyze classifies the image and returns the top classifications,
// highest confidence first, trimmed to the service's limit.
func (s *Service) Analyze(ctx context.Context, imagePath string) ([]Classification, error) {
	results, err := s.classifier.Classify(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoClassification
	}

	// Classifiers generally return sorted results already; re-sorting is
	// a stable no-op in that case and protects against ones that don't.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > s.topN {
		results = results[:s.topN]
	}

	log.Debug().
		Str("component", "recognize").
		Str("operation", "analyze").
		Str("image", imagePath).
		Int("labels", len(results)).
		Str("best_label", results[0].Label).
		Msg("image classified")

	return results, nil
}

// Footprint resolves the best classification into a water footprint
// result for the given quantity. The label flows through the catalog's
// resolve-or-fallback workflow, so a label outside the factor table still
// produces an approximate answer.
func (s *Service) Footprint(
	ctx context.Context,
	imagePath string,
	quantity float64,
	characteristics string,
) ([]Classification, catalog.FootprintResult, error) {
	classifications, err := s.Analyze(ctx, imagePath)
	if err != nil {
		return nil, catalog.FootprintResult{}, err
	}

	result, err := catalog.EstimateFootprint(classifications[0].Label, quantity, "", characteristics)
	if err != nil {
		return classifications, catalog.FootprintResult{}, err
	}

	return classifications, result, nil
}
