package normalize

import (
	"strings"

	"github.com/maheshrc27/shutterpost/internal/models"
)

const (
	defaultCategory    = "general"
	defaultBestTime    = "9:00 AM"
	placeholderTitle   = "Content Idea"
	placeholderTip     = "Photography tip"
	placeholderMixIdea = "Content idea"
)

// Ideas normalises a content-idea generation for niche. IDs are left empty.
func Ideas(raw, niche string, count int) Result[[]models.ContentIdea] {
	decode := func(obj map[string]any) models.ContentIdea {
		return models.ContentIdea{
			Niche:             niche,
			Title:             stringField(obj, placeholderTitle, "title"),
			Description:       stringField(obj, "", "description"),
			SuggestedCaption:  stringField(obj, "", "suggested_caption"),
			SuggestedHashtags: hashtagsField(obj, "suggested_hashtags"),
			BestTimeToPost:    stringField(obj, defaultBestTime, "best_time_to_post"),
			ContentType:       contentType(obj, models.ContentTypePhoto),
		}
	}
	return normalizeList(raw, count, decode, func() []models.ContentIdea {
		return fallbackIdeas(niche, count)
	})
}

// Tips normalises a tip generation.
func Tips(raw string, p ListParams) Result[[]models.GeneratedTip] {
	decode := func(obj map[string]any) models.GeneratedTip {
		return models.GeneratedTip{
			Category:          stringField(obj, defaultCategory, "category"),
			Tip:               stringField(obj, placeholderTip, "tip", "text"),
			CaptionSuggestion: stringField(obj, "", "caption_suggestion", "caption"),
			Hashtags:          hashtagsField(obj, "hashtags"),
			ContentType:       contentType(obj, ""),
		}
	}
	return normalizeList(raw, p.Count, decode, func() []models.GeneratedTip {
		return fallbackTips(p)
	})
}

// MixIdeas normalises a content-mix generation.
func MixIdeas(raw string, p ListParams) Result[[]models.ContentMixIdea] {
	decode := func(obj map[string]any) models.ContentMixIdea {
		return models.ContentMixIdea{
			Category:          stringField(obj, defaultCategory, "category"),
			Idea:              stringField(obj, placeholderMixIdea, "idea", "title"),
			CaptionSuggestion: stringField(obj, "", "caption_suggestion", "caption"),
			Hashtags:          hashtagsField(obj, "hashtags"),
			ContentType:       contentType(obj, models.ContentTypePhoto),
		}
	}
	return normalizeList(raw, p.Count, decode, func() []models.ContentMixIdea {
		return fallbackMixIdeas(p)
	})
}

func contentType(obj map[string]any, def string) string {
	s, ok := obj["content_type"].(string)
	if !ok {
		return def
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !models.IsContentType(s) {
		return def
	}
	return s
}
