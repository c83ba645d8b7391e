package classifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClassifierPicksFromCropTable(t *testing.T) {
	clf := NewMockClassifier()

	result, err := clf.Classify(context.Background(), "Wheat", "", "")
	require.NoError(t, err)
	assert.Contains(t, []string{"Rust", "Powdery Mildew", "Smut"}, result)
}

func TestMockClassifierUnknownCropIsHealthy(t *testing.T) {
	clf := NewMockClassifier()

	result, err := clf.Classify(context.Background(), "dragonfruit", "", "")
	require.NoError(t, err)
	assert.Equal(t, "Healthy", result)
}

func TestFactorySelectsProvider(t *testing.T) {
	clf, err := New(Config{Provider: ProviderMock})
	require.NoError(t, err)
	assert.IsType(t, &MockClassifier{}, clf)

	_, err = New(Config{Provider: ProviderRemote})
	assert.Error(t, err) // endpoint required

	clf, err = New(Config{Provider: ProviderRemote, ModelEndpoint: "http://localhost:9000/predict"})
	require.NoError(t, err)
	assert.IsType(t, &RemoteClassifier{}, clf)

	// Auto without an endpoint stays on the mock table.
	clf, err = New(Config{Provider: ProviderAuto})
	require.NoError(t, err)
	assert.IsType(t, &MockClassifier{}, clf)

	// Auto with an endpoint wraps remote with the mock fallback.
	clf, err = New(Config{Provider: ProviderAuto, ModelEndpoint: "http://localhost:9000/predict"})
	require.NoError(t, err)
	assert.IsType(t, &FallbackClassifier{}, clf)
}

func TestFallbackUsesMockWhenRemoteDown(t *testing.T) {
	// Nothing listens on this port; the fallback should absorb the failure.
	clf := NewFallbackClassifier(NewRemoteClassifier("http://127.0.0.1:1/predict"), NewMockClassifier())

	result, err := clf.Classify(context.Background(), "rice", "", "yellow spots on leaves")
	require.NoError(t, err)
	assert.NotEmpty(t, result)
}
