package recognize

import (
	"context"
	"path/filepath"
	"strings"
)

// staticFixture maps a filename keyword to canned classifications.
type staticFixture struct {
	keyword string
	results []Classification
}

// staticFixtures are the canned results of the offline classifier,
// checked in declaration order against the image filename.
//
//nolint:gochecknoglobals // Fixed fixture data for the offline classifier.
var staticFixtures = []staticFixture{
	{keyword: "apple", results: []Classification{
		{Label: "Granny Smith apple", Score: 0.91},
		{Label: "apple", Score: 0.86},
		{Label: "pomegranate", Score: 0.04},
	}},
	{keyword: "coffee", results: []Classification{
		{Label: "espresso", Score: 0.77},
		{Label: "coffee mug", Score: 0.71},
		{Label: "eggnog", Score: 0.05},
	}},
	{keyword: "jeans", results: []Classification{
		{Label: "jean, blue jean, denim", Score: 0.88},
		{Label: "miniskirt", Score: 0.06},
		{Label: "overskirt", Score: 0.02},
	}},
	{keyword: "shirt", results: []Classification{
		{Label: "jersey, T-shirt, tee shirt", Score: 0.83},
		{Label: "sweatshirt", Score: 0.09},
		{Label: "cardigan", Score: 0.03},
	}},
	{keyword: "laptop", results: []Classification{
		{Label: "laptop, laptop computer", Score: 0.93},
		{Label: "notebook, notebook computer", Score: 0.05},
		{Label: "desktop computer", Score: 0.01},
	}},
	{keyword: "phone", results: []Classification{
		{Label: "cellular telephone, cellular phone, cellphone", Score: 0.89},
		{Label: "iPod", Score: 0.06},
		{Label: "remote control", Score: 0.02},
	}},
	{keyword: "rice", results: []Classification{
		{Label: "rice", Score: 0.74},
		{Label: "plate", Score: 0.14},
		{Label: "carbonara", Score: 0.06},
	}},
}

// StaticClassifier is a deterministic offline Classifier.
//
// It matches keywords in the image filename against canned fixtures,
// standing in for the real model so the rest of the pipeline can run
// without one. Unrecognized filenames classify as an unknown object with
// low confidence rather than failing.
type StaticClassifier struct{}

// NewStaticClassifier returns the offline classifier.
func NewStaticClassifier() *StaticClassifier {
	return &StaticClassifier{}
}

// Classify proposes labels from the image filename.
func (c *StaticClassifier) Classify(ctx context.Context, imagePath string) ([]Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := strings.ToLower(filepath.Base(imagePath))
	for _, fixture := range staticFixtures {
		if strings.Contains(name, fixture.keyword) {
			out := make([]Classification, len(fixture.results))
			copy(out, fixture.results)
			return out, nil
		}
	}

	return []Classification{
		{Label: "unknown object", Score: 0.12},
	}, nil
}
