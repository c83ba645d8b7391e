package classifier

import "context"

// Classifier is the narrow interface the diagnosis flow depends on.
// Implement it to plug in a real model; the backend ships with a mock
// lookup table and a remote HTTP predictor.
type Classifier interface {
	Classify(ctx context.Context, crop, imagePath, description string) (string, error)
}

// ProviderType selects which classifier backend to use.
type ProviderType string

const (
	ProviderMock   ProviderType = "mock"
	ProviderRemote ProviderType = "remote"
	ProviderAuto   ProviderType = "auto"
)
