// Package generation talks to the external text and image generation
// providers. Callers own timeouts through ctx.
package generation

import "context"

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Image is a single generated image. Base64 is empty when the provider
// answered without an image.
type Image struct {
	Provider string
	Base64   string
	MIMEType string
	Text     string
}

type TextGenerator interface {
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}
