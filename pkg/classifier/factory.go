package classifier

import "fmt"

// Config holds classifier provider configuration
type Config struct {
	Provider      ProviderType // "mock", "remote" or "auto"
	ModelEndpoint string       // required for the remote provider
}

// New creates a Classifier based on the config. This is the factory function:
// swap the predictor by changing config, not code.
func New(cfg Config) (Classifier, error) {
	switch cfg.Provider {
	case ProviderMock:
		return NewMockClassifier(), nil

	case ProviderRemote:
		if cfg.ModelEndpoint == "" {
			return nil, fmt.Errorf("MODEL_ENDPOINT is required for the remote classifier")
		}
		return NewRemoteClassifier(cfg.ModelEndpoint), nil

	default:
		// Auto: prefer the remote model when an endpoint is configured,
		// falling back to the mock table when it is unreachable.
		if cfg.ModelEndpoint != "" {
			return NewFallbackClassifier(NewRemoteClassifier(cfg.ModelEndpoint), NewMockClassifier()), nil
		}
		return NewMockClassifier(), nil
	}
}
