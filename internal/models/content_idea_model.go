package models

type ContentIdea struct {
	ID                string   `db:"id" json:"id"`
	Niche             string   `db:"niche" json:"niche"`
	Title             string   `db:"title" json:"title"`
	Description       string   `db:"description" json:"description"`
	SuggestedCaption  string   `db:"suggested_caption" json:"suggested_caption"`
	SuggestedHashtags []string `db:"suggested_hashtags" json:"suggested_hashtags"`
	BestTimeToPost    string   `db:"best_time_to_post" json:"best_time_to_post"`
	ContentType       string   `db:"content_type" json:"content_type"` // photo, carousel, reel, story
}

const (
	ContentTypePhoto    = "photo"
	ContentTypeCarousel = "carousel"
	ContentTypeReel     = "reel"
	ContentTypeStory    = "story"
)

func IsContentType(s string) bool {
	switch s {
	case ContentTypePhoto, ContentTypeCarousel, ContentTypeReel, ContentTypeStory:
		return true
	}
	return false
}
