package service

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/shutterpost/internal/refdata"
)

const captionSystem = `You are an expert Instagram content strategist specializing in photography businesses.
Generate engaging, authentic captions that drive engagement and bookings.
Always return response in this exact JSON format:
{"caption": "your caption here", "hashtags": ["#tag1", "#tag2"], "engagement_tips": ["tip1", "tip2"]}`

const ideasSystem = `You are an expert Instagram content strategist for photography businesses.
Generate creative, engagement-driving content ideas.
Return response as JSON array with objects containing: title, description, suggested_caption, suggested_hashtags (array), best_time_to_post, content_type`

const tipsSystem = `You are an Instagram coach for professional photographers.
Return response as JSON array with objects containing: category, tip, caption_suggestion, hashtags (array), content_type`

const mixSystem = `You are an Instagram content planner for photography businesses.
Return response as JSON array with objects containing: category, idea, caption_suggestion, hashtags (array), content_type`

func captionPrompt(niche, topic, tone string, includeCTA bool) string {
	var topicText, ctaText string
	if topic != "" {
		topicText = " about " + topic
	}
	if includeCTA {
		ctaText = " Include a call-to-action to book services."
	}

	return fmt.Sprintf(`Create an Instagram caption for a %s photography business%s.
Tone: %s.%s

Generate:
1. A compelling caption (150-300 characters)
2. 10 relevant hashtags for %s photography
3. 3 engagement tips for this post

Return as JSON with keys: caption, hashtags, engagement_tips`, niche, topicText, tone, ctaText, niche)
}

func ideasPrompt(niche string, count int) string {
	return fmt.Sprintf(`Generate %d unique Instagram content ideas for a %s photography business.

For each idea include:
- title: catchy title for the content
- description: what the post should feature
- suggested_caption: ready-to-use caption
- suggested_hashtags: 5 relevant hashtags
- best_time_to_post: optimal posting time
- content_type: photo, carousel, reel, or story

Return as JSON array.`, count, refdata.NicheLabel(niche))
}

func audienceText(niche string) string {
	if niche == "" {
		return "a photography business"
	}
	return fmt.Sprintf("a %s photography business", refdata.NicheLabel(niche))
}

func tipsPrompt(niche string, categories []string, count int) string {
	return fmt.Sprintf(`Give %d practical Instagram tips for %s.
Only use these categories: %s.

For each tip include:
- category: one of the categories above
- tip: the advice itself
- caption_suggestion: a caption that puts the tip into practice
- hashtags: 5 relevant hashtags
- content_type: photo, carousel, reel, or story

Return as JSON array.`, count, audienceText(niche), strings.Join(categories, ", "))
}

func mixPrompt(niche string, categories []string, count int) string {
	return fmt.Sprintf(`Plan %d Instagram posts for %s that keep a healthy content mix.
Spread the posts across these categories: %s.

For each post include:
- category: one of the categories above
- idea: what the post should show
- caption_suggestion: ready-to-use caption
- hashtags: 5 relevant hashtags
- content_type: photo, carousel, reel, or story

Return as JSON array.`, count, audienceText(niche), strings.Join(categories, ", "))
}

func enhancedImagePrompt(prompt, style, niche string) string {
	return fmt.Sprintf("%s, %s, %s photography style, high quality, professional lighting, Instagram-worthy", prompt, style, niche)
}
