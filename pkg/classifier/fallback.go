package classifier

import (
	"context"
	"log"
)

// FallbackClassifier tries the remote model first and falls back to the mock
// table when the model is down, so diagnosis keeps working offline.
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

// NewFallbackClassifier creates a new fallback classifier
func NewFallbackClassifier(primary, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{primary: primary, fallback: fallback}
}

func (f *FallbackClassifier) Classify(ctx context.Context, crop, imagePath, description string) (string, error) {
	result, err := f.primary.Classify(ctx, crop, imagePath, description)
	if err == nil {
		return result, nil
	}

	log.Printf("[Classifier] Remote model failed: %v, falling back to mock", err)
	return f.fallback.Classify(ctx, crop, imagePath, description)
}
