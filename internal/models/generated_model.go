package models

// CaptionBundle is the normalised result of a caption generation.
type CaptionBundle struct {
	Caption        string   `json:"caption"`
	Hashtags       []string `json:"hashtags"`
	EngagementTips []string `json:"engagement_tips"`
}

type GeneratedTip struct {
	Category          string   `json:"category"`
	Tip               string   `json:"tip"`
	CaptionSuggestion string   `json:"caption_suggestion"`
	Hashtags          []string `json:"hashtags"`
	ContentType       string   `json:"content_type,omitempty"`
}

type ContentMixIdea struct {
	Category          string   `json:"category"`
	Idea              string   `json:"idea"`
	CaptionSuggestion string   `json:"caption_suggestion"`
	Hashtags          []string `json:"hashtags"`
	ContentType       string   `json:"content_type,omitempty"`
}
