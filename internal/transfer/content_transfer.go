package transfer

type ContentCreation struct {
	Title         string   `json:"title"`
	Caption       string   `json:"caption"`
	Hashtags      []string `json:"hashtags"`
	Niche         string   `json:"niche"`
	MediaURL      *string  `json:"media_url"`
	MediaType     *string  `json:"media_type"`
	ScheduledDate *string  `json:"scheduled_date"`
	Status        string   `json:"status"`
}

// ScheduleRequest is accepted either as query parameters or as a JSON body.
type ScheduleRequest struct {
	ContentID     string `json:"content_id" query:"content_id"`
	ScheduledDate string `json:"scheduled_date" query:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time" query:"scheduled_time"`
}

type MediaUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type MediaUploadResponse struct {
	ID        string  `json:"id"`
	Filename  string  `json:"filename"`
	MediaType string  `json:"media_type"`
	MediaURL  string  `json:"media_url"`
	PublicURL *string `json:"public_url,omitempty"`
}
