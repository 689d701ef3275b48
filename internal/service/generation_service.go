package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maheshrc27/shutterpost/internal/apperr"
	"github.com/maheshrc27/shutterpost/internal/generation"
	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/normalize"
	"github.com/maheshrc27/shutterpost/internal/refdata"
	"github.com/maheshrc27/shutterpost/internal/repository"
	"github.com/maheshrc27/shutterpost/internal/transfer"
	"github.com/maheshrc27/shutterpost/pkg/logging"
	"go.uber.org/zap"
)

// MaxGenerateCount caps how many list entries a single request may ask for.
const MaxGenerateCount = 20

type GenerationService interface {
	Caption(ctx context.Context, req *transfer.CaptionRequest) (*models.CaptionBundle, error)
	Image(ctx context.Context, req *transfer.ImageRequest) (*transfer.ImageResponse, error)
	Ideas(ctx context.Context, req *transfer.IdeasRequest) ([]models.ContentIdea, error)
	Tips(ctx context.Context, req *transfer.ListRequest) ([]models.GeneratedTip, error)
	MixIdeas(ctx context.Context, req *transfer.ListRequest) ([]models.ContentMixIdea, error)
}

type generationService struct {
	text         generation.TextGenerator
	images       map[string]generation.ImageGenerator
	ir           repository.ContentIdeaRepository
	textTimeout  time.Duration
	imageTimeout time.Duration
	log          *zap.Logger
}

// NewGenerationService wires the providers. text may be nil and images may
// lack an entry when the matching credential is not configured; requests
// that need them fail with a provider error.
func NewGenerationService(
	text generation.TextGenerator,
	images map[string]generation.ImageGenerator,
	ir repository.ContentIdeaRepository,
	textTimeout, imageTimeout time.Duration) GenerationService {
	return &generationService{
		text:         text,
		images:       images,
		ir:           ir,
		textTimeout:  textTimeout,
		imageTimeout: imageTimeout,
		log:          logging.WithComponent("generation"),
	}
}

func errNotConfigured() error {
	return apperr.ProviderUnavailable("API key not configured", nil)
}

func (s *generationService) generateText(ctx context.Context, op, system, prompt string) (string, error) {
	if s.text == nil {
		return "", errNotConfigured()
	}

	ctx, cancel := context.WithTimeout(ctx, s.textTimeout)
	defer cancel()

	raw, err := s.text.GenerateText(ctx, system, prompt)
	if err != nil {
		s.log.Error("text generation failed", zap.String("op", op), zap.Error(err))
		return "", apperr.ProviderUnavailable(fmt.Sprintf("Failed to generate %s", op), err)
	}
	return raw, nil
}

func (s *generationService) logOutcome(op string, outcome normalize.Outcome) {
	if outcome != normalize.Parsed {
		s.log.Warn("model output did not parse, using fallback",
			zap.String("op", op),
			zap.Stringer("outcome", outcome))
	}
}

func clampCount(count int) int {
	if count > MaxGenerateCount {
		return MaxGenerateCount
	}
	return count
}

func (s *generationService) Caption(ctx context.Context, req *transfer.CaptionRequest) (*models.CaptionBundle, error) {
	niche := strings.TrimSpace(req.Niche)
	if niche == "" {
		return nil, apperr.InvalidInput("niche is required")
	}
	tone := req.Tone
	if tone == "" {
		tone = transfer.DefaultTone
	}

	raw, err := s.generateText(ctx, "caption", captionSystem, captionPrompt(niche, strings.TrimSpace(req.Topic), tone, req.IncludeCTA))
	if err != nil {
		return nil, err
	}

	res := normalize.Caption(raw, niche)
	s.logOutcome("caption", res.Outcome)
	return &res.Value, nil
}

func (s *generationService) Image(ctx context.Context, req *transfer.ImageRequest) (*transfer.ImageResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apperr.InvalidInput("prompt is required")
	}
	if strings.TrimSpace(req.Niche) == "" {
		return nil, apperr.InvalidInput("niche is required")
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider == "" {
		provider = generation.ProviderGemini
	}
	if provider != generation.ProviderGemini && provider != generation.ProviderOpenAI {
		return nil, apperr.InvalidInput(fmt.Sprintf("unknown provider %q", req.Provider))
	}
	gen, ok := s.images[provider]
	if !ok || gen == nil {
		return nil, errNotConfigured()
	}

	style := req.Style
	if style == "" {
		style = transfer.DefaultImageStyle
	}
	prompt := enhancedImagePrompt(req.Prompt, style, req.Niche)

	ctx, cancel := context.WithTimeout(ctx, s.imageTimeout)
	defer cancel()

	img, err := gen.GenerateImage(ctx, prompt)
	if err != nil {
		s.log.Error("image generation failed", zap.String("provider", provider), zap.Error(err))
		return nil, apperr.ProviderUnavailable("Failed to generate image", err)
	}
	if img == nil || img.Base64 == "" {
		s.log.Error("provider returned no image", zap.String("provider", provider))
		return nil, apperr.NoImage()
	}

	return &transfer.ImageResponse{
		Provider:     provider,
		ImageBase64:  img.Base64,
		Prompt:       prompt,
		TextResponse: img.Text,
	}, nil
}

func (s *generationService) Ideas(ctx context.Context, req *transfer.IdeasRequest) ([]models.ContentIdea, error) {
	if req.Niche == "" {
		return nil, apperr.InvalidInput("niche is required")
	}
	if !refdata.IsNiche(req.Niche) {
		return nil, apperr.InvalidInput(fmt.Sprintf("unknown niche %q", req.Niche))
	}

	count := clampCount(req.Count)
	if count <= 0 {
		return []models.ContentIdea{}, nil
	}

	raw, err := s.generateText(ctx, "ideas", ideasSystem, ideasPrompt(req.Niche, count))
	if err != nil {
		return nil, err
	}

	res := normalize.Ideas(raw, req.Niche, count)
	s.logOutcome("ideas", res.Outcome)

	ideas := res.Value
	batch := make([]*models.ContentIdea, len(ideas))
	for i := range ideas {
		ideas[i].ID = uuid.NewString()
		batch[i] = &ideas[i]
	}
	if err := s.ir.CreateMany(ctx, batch); err != nil {
		return nil, fmt.Errorf("error saving content ideas: %w", err)
	}

	return ideas, nil
}

// listParams validates the optional niche and categories of a list request.
func listParams(req *transfer.ListRequest, known []string) (normalize.ListParams, error) {
	if req.Niche != "" && !refdata.IsNiche(req.Niche) {
		return normalize.ListParams{}, apperr.InvalidInput(fmt.Sprintf("unknown niche %q", req.Niche))
	}

	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}
	var unknown []string
	for _, c := range req.Categories {
		if !allowed[c] {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		return normalize.ListParams{}, apperr.InvalidInput(fmt.Sprintf("unknown categories: %s", strings.Join(unknown, ", ")))
	}

	return normalize.ListParams{
		Niche:      req.Niche,
		Categories: normalize.ResolveCategories(req.Categories, known),
		Count:      clampCount(req.Count),
	}, nil
}

func (s *generationService) Tips(ctx context.Context, req *transfer.ListRequest) ([]models.GeneratedTip, error) {
	p, err := listParams(req, refdata.TipCategories())
	if err != nil {
		return nil, err
	}
	if p.Count <= 0 {
		return []models.GeneratedTip{}, nil
	}

	raw, err := s.generateText(ctx, "tips", tipsSystem, tipsPrompt(p.Niche, p.Categories, p.Count))
	if err != nil {
		return nil, err
	}

	res := normalize.Tips(raw, p)
	s.logOutcome("tips", res.Outcome)
	return res.Value, nil
}

func (s *generationService) MixIdeas(ctx context.Context, req *transfer.ListRequest) ([]models.ContentMixIdea, error) {
	p, err := listParams(req, refdata.MixCategories())
	if err != nil {
		return nil, err
	}
	if p.Count <= 0 {
		return []models.ContentMixIdea{}, nil
	}

	raw, err := s.generateText(ctx, "content mix", mixSystem, mixPrompt(p.Niche, p.Categories, p.Count))
	if err != nil {
		return nil, err
	}

	res := normalize.MixIdeas(raw, p)
	s.logOutcome("content mix", res.Outcome)
	return res.Value, nil
}
