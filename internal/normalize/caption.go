package normalize

import (
	"encoding/json"
	"strings"

	"github.com/maheshrc27/shutterpost/internal/models"
	"github.com/maheshrc27/shutterpost/internal/refdata"
)

const (
	captionLimit        = 300
	fallbackHashtagSize = 10
	placeholderCaption  = "Capturing the moments that matter most."
)

var fallbackEngagementTips = []string{
	"Post during peak hours",
	"Engage with comments quickly",
	"Use stories for behind-the-scenes",
}

// Caption normalises a caption generation. Output that is not a JSON object
// becomes the caption itself, cut to 300 characters.
func Caption(raw, niche string) Result[models.CaptionBundle] {
	var obj map[string]any
	if err := json.Unmarshal([]byte(ExtractFenced(raw)), &obj); err != nil || obj == nil {
		return Result[models.CaptionBundle]{
			Value: models.CaptionBundle{
				Caption:        truncateRunes(strings.TrimSpace(raw), captionLimit),
				Hashtags:       refdata.TopHashtags(niche, fallbackHashtagSize),
				EngagementTips: append([]string(nil), fallbackEngagementTips...),
			},
			Outcome: FallbackTruncated,
		}
	}

	return Result[models.CaptionBundle]{
		Value: models.CaptionBundle{
			Caption:        stringField(obj, placeholderCaption, "caption"),
			Hashtags:       hashtagsField(obj, "hashtags"),
			EngagementTips: stringsField(obj, "engagement_tips"),
		},
		Outcome: Parsed,
	}
}

func truncateRunes(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit])
}
