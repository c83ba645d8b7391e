package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// RemoteClassifier calls an external model-serving endpoint over HTTP.
// The endpoint receives the crop, the farmer's description and the image
// (base64, when one was uploaded) and answers with a disease label.
type RemoteClassifier struct {
	endpoint string
	client   *http.Client
}

// NewRemoteClassifier creates a new remote classifier for the given endpoint
func NewRemoteClassifier(endpoint string) *RemoteClassifier {
	return &RemoteClassifier{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

type predictRequest struct {
	Crop        string `json:"crop"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"` // base64
}

type predictResponse struct {
	Disease string `json:"disease"`
}

func (r *RemoteClassifier) Classify(ctx context.Context, crop, imagePath, description string) (string, error) {
	payload := predictRequest{Crop: crop, Description: description}

	if imagePath != "" {
		data, err := os.ReadFile(imagePath)
		if err != nil {
			return "", fmt.Errorf("failed to read image: %w", err)
		}
		payload.Image = base64.StdEncoding.EncodeToString(data)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result predictResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Disease == "" {
		return "", fmt.Errorf("model returned empty disease label")
	}
	return result.Disease, nil
}
