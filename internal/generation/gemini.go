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

	"google.golang.org/api/googleapi"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the v1beta generateContent REST endpoint for both text
// and image models.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	textModel  string
	imageModel string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, baseURL, textModel, imageModel string, httpClient *http.Client) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing gemini api key")
	}
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &GeminiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		textModel:  modelName(textModel),
		imageModel: modelName(imageModel),
		httpClient: httpClient,
	}, nil
}

type geminiBlob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *geminiBlob `json:"inlineData,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type generateContentRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content *geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) GenerateText(ctx context.Context, system, prompt string) (string, error) {
	req := &generateContentRequest{
		Contents: []geminiContent{userContent(prompt)},
	}
	if system != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: system}}}
	}

	resp, err := g.generateContent(ctx, g.textModel, req)
	if err != nil {
		return "", fmt.Errorf("gemini generate text: %w", err)
	}

	text, _ := collectParts(resp)
	return text, nil
}

func (g *GeminiClient) GenerateImage(ctx context.Context, prompt string) (*Image, error) {
	req := &generateContentRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: "You are an AI that generates beautiful photography images."}},
		},
		Contents: []geminiContent{userContent(prompt)},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}

	resp, err := g.generateContent(ctx, g.imageModel, req)
	if err != nil {
		return nil, fmt.Errorf("gemini generate image: %w", err)
	}

	text, blobs := collectParts(resp)
	img := &Image{Provider: ProviderGemini, Text: text}
	if len(blobs) > 0 {
		img.Base64 = blobs[0].Data
		img.MIMEType = blobs[0].MimeType
	}
	return img, nil
}

func (g *GeminiClient) generateContent(ctx context.Context, model string, body *generateContentRequest) (*generateContentResponse, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/v1beta/%s:generateContent", g.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-goog-api-key", g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Non-2xx bodies use the standard Google error envelope.
	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("gemini decode error: %w", err)
	}
	return &out, nil
}

func userContent(text string) geminiContent {
	return geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: text}},
	}
}

// collectParts joins the text parts of the first candidate and returns its
// inline blobs in order.
func collectParts(resp *generateContentResponse) (string, []*geminiBlob) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	var blobs []*geminiBlob
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
		if part.InlineData != nil && part.InlineData.Data != "" {
			blobs = append(blobs, part.InlineData)
		}
	}
	return sb.String(), blobs
}

func modelName(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}
