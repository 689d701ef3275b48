package normalize

import (
	"fmt"

	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/refdata"
)

const fallbackHashtags = 5

var bestTimes = []string{"9:00 AM", "12:00 PM", "7:00 PM"}

// ResolveCategories keeps the known categories from requested, in order and
// without duplicates. An empty result means every known category.
func ResolveCategories(requested, known []string) []string {
	allowed := make(map[string]bool, len(known))
	for _, k := range known {
		allowed[k] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, c := range requested {
		if allowed[c] && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), known...)
	}
	return out
}

type entry struct {
	category string
	snippet  string
}

// roundRobin walks categories in turn, taking the next unused snippet from
// each, until count entries are collected or every table is exhausted.
func roundRobin(categories []string, table func(string) ([]string, bool), count int) []entry {
	lists := make([][]string, len(categories))
	for i, c := range categories {
		lists[i], _ = table(c)
	}

	var out []entry
	for depth := 0; len(out) < count; depth++ {
		took := false
		for i, c := range categories {
			if len(out) == count {
				break
			}
			if depth < len(lists[i]) {
				out = append(out, entry{category: c, snippet: lists[i][depth]})
				took = true
			}
		}
		if !took {
			break
		}
	}
	return out
}

func audience(niche string) string {
	if niche == "" {
		return "photography"
	}
	return refdata.NicheLabel(niche) + " photography"
}

func hashtagsFor(niche string) []string {
	if tags := refdata.TopHashtags(niche, fallbackHashtags); len(tags) > 0 {
		return tags
	}
	return refdata.GenericHashtags()
}

func fallbackTips(p ListParams) []models.GeneratedTip {
	categories := ResolveCategories(p.Categories, refdata.TipCategories())
	entries := roundRobin(categories, refdata.Tips, p.Count)

	out := make([]models.GeneratedTip, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.GeneratedTip{
			Category:          e.category,
			Tip:               e.snippet,
			CaptionSuggestion: fmt.Sprintf("📸 Pro tip: %s. Save this for your next %s shoot!", e.snippet, audience(p.Niche)),
			Hashtags:          hashtagsFor(p.Niche),
		})
	}
	return out
}

func fallbackMixIdeas(p ListParams) []models.ContentMixIdea {
	categories := ResolveCategories(p.Categories, refdata.MixCategories())
	entries := roundRobin(categories, refdata.MixIdeas, p.Count)

	out := make([]models.ContentMixIdea, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.ContentMixIdea{
			Category:          e.category,
			Idea:              e.snippet,
			CaptionSuggestion: fmt.Sprintf("%s ✨ What would you love to see next from our %s? Tell us below!", e.snippet, audience(p.Niche)),
			Hashtags:          hashtagsFor(p.Niche),
			ContentType:       refdata.MixContentType(e.category),
		})
	}
	return out
}

func fallbackIdeas(niche string, count int) []models.ContentIdea {
	entries := roundRobin(refdata.MixCategories(), refdata.MixIdeas, count)

	out := make([]models.ContentIdea, 0, len(entries))
	for i, e := range entries {
		out = append(out, models.ContentIdea{
			Niche:             niche,
			Title:             e.snippet,
			Description:       fmt.Sprintf("%s, tailored to your %s audience.", e.snippet, audience(niche)),
			SuggestedCaption:  fmt.Sprintf("%s ✨ Booking %s sessions now - link in bio!", e.snippet, audience(niche)),
			SuggestedHashtags: hashtagsFor(niche),
			BestTimeToPost:    bestTimes[i%len(bestTimes)],
			ContentType:       refdata.MixContentType(e.category),
		})
	}
	return out
}
