package classifier

import (
	"context"
	"math/rand"
	"strings"
)

// diseasesByCrop is the prototype lookup table. Unknown crops come back "Healthy".
var diseasesByCrop = map[string][]string{
	"wheat":  {"Rust", "Powdery Mildew", "Smut"},
	"rice":   {"Blast", "Bacterial Leaf Blight", "Brown Spot"},
	"tomato": {"Early Blight", "Late Blight", "Leaf Curl"},
	"onion":  {"Downy Mildew", "Purple Blotch"},
	"maize":  {"Turcicum Leaf Blight", "Rust"},
}

// MockClassifier picks a plausible disease for the crop at random.
// Stand-in until the real model is wired up.
type MockClassifier struct{}

// NewMockClassifier creates a new mock classifier
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

func (m *MockClassifier) Classify(_ context.Context, crop, _, _ string) (string, error) {
	diseases, ok := diseasesByCrop[strings.ToLower(strings.TrimSpace(crop))]
	if !ok || len(diseases) == 0 {
		return "Healthy", nil
	}
	return diseases[rand.Intn(len(diseases))], nil
}
