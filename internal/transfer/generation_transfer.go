package transfer

type CaptionRequest struct {
	Niche      string `json:"niche"`
	Topic      string `json:"topic"`
	Tone       string `json:"tone"`
	IncludeCTA bool   `json:"include_cta"`
}

type ImageRequest struct {
	Prompt   string `json:"prompt"`
	Niche    string `json:"niche"`
	Provider string `json:"provider"`
	Style    string `json:"style"`
}

type ImageResponse struct {
	Provider     string `json:"provider"`
	ImageBase64  string `json:"image_base64"`
	Prompt       string `json:"prompt"`
	TextResponse string `json:"text_response,omitempty"`
}

type IdeasRequest struct {
	Niche string `json:"niche"`
	Count int    `json:"count"`
}

// ListRequest drives tip and content-mix generation.
type ListRequest struct {
	Niche      string   `json:"niche"`
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

const (
	DefaultTone       = "professional"
	DefaultImageStyle = "professional photography"
	DefaultCount      = 5
)

func NewCaptionRequest() *CaptionRequest {
	return &CaptionRequest{Tone: DefaultTone, IncludeCTA: true}
}

func NewImageRequest() *ImageRequest {
	return &ImageRequest{Provider: "gemini", Style: DefaultImageStyle}
}

func NewIdeasRequest() *IdeasRequest {
	return &IdeasRequest{Count: DefaultCount}
}

func NewListRequest() *ListRequest {
	return &ListRequest{Count: DefaultCount}
}
