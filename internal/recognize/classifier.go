// Package recognize abstracts the external image classification
// collaborator behind a capability interface and connects its labels to
// the catalog's footprint workflow.
//
// The core consumes only label text and confidence scores; it assumes
// nothing about the model behind the interface, so implementations can be
// swapped freely (including the deterministic stub used in tests and
// offline runs).
package recognize

import "context"

// DefaultTopN is how many classifications Analyze keeps.
const DefaultTopN = 3

// Classification is one label proposed by the classifier.
type Classification struct {
	// Label is the recognized item text.
	Label string `json:"label"`

	// Score is the classifier's confidence in [0, 1].
	Score float64 `json:"score"`
}

// Classifier is the capability interface over an image classification
// pipeline.
type Classifier interface {
	// Classify proposes labels for the image at the given path, most
	// confident first.
	Classify(ctx context.Context, imagePath string) ([]Classification, error)
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, imagePath string) ([]Classification, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, imagePath string) ([]Classification, error) {
	return f(ctx, imagePath)
}
