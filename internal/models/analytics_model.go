package models

type TrendPoint struct {
	Day        string `json:"day"`
	Posts      int    `json:"posts"`
	Engagement int    `json:"engagement"`
}

type Analytics struct {
	TotalPosts            int            `json:"total_posts"`
	ScheduledPosts        int            `json:"scheduled_posts"`
	PublishedPosts        int            `json:"published_posts"`
	Drafts                int            `json:"drafts"`
	PostsByNiche          map[string]int `json:"posts_by_niche"`
	EngagementTrend       []TrendPoint   `json:"engagement_trend"`
	BestPerformingNiche   string         `json:"best_performing_niche"`
	ContentIdeasGenerated int            `json:"content_ideas_generated"`
}
