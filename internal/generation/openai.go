package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAIImageClient calls the images/generations REST endpoint.
type OpenAIImageClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIImageClient(apiKey, baseURL, model string, httpClient *http.Client) (*OpenAIImageClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing openai api key")
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	if model == "" {
		model = "gpt-image-1"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &OpenAIImageClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}, nil
}

type openAIHTTPError struct {
	StatusCode int
	Body       string
}

func (e *openAIHTTPError) Error() string {
	return fmt.Sprintf("openai http %d: %s", e.StatusCode, e.Body)
}

type imagesRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
}

type imagesResponse struct {
	Data []struct {
		B64JSON       string `json:"b64_json"`
		RevisedPrompt string `json:"revised_prompt"`
	} `json:"data"`
}

func (c *OpenAIImageClient) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(imagesRequest{Model: c.model, Prompt: prompt, N: 1}); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/images/generations", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai generate image: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &openAIHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out imagesResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("openai decode error: %w", err)
	}

	img := &Image{Provider: ProviderOpenAI, MIMEType: "image/png"}
	if len(out.Data) > 0 {
		img.Base64 = strings.TrimSpace(out.Data[0].B64JSON)
		img.Text = out.Data[0].RevisedPrompt
	}
	return img, nil
}
