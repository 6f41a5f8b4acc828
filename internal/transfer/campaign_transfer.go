package transfer

// PostDraft is one draft record returned by the generation gateway for a
// campaign request, before it is assigned an id and a status.
type PostDraft struct {
	Day             string `json:"day"`
	Network         string `json:"network"`
	Content         string `json:"content"`
	SuggestedVisual string `json:"suggestedVisual"`
}

type CampaignRequest struct {
	Days      []string `json:"days"`
	Networks  []string `json:"networks"`
	UserBrief string   `json:"user_brief"`
}

type StatusUpdate struct {
	PostID string `json:"post_id"`
	Status string `json:"status"`
}

type VisualRequest struct {
	PostID     string `json:"post_id"`
	VisualType string `json:"visual_type"`
}

type DayToggle struct {
	Day string `json:"day"`
}

type DashboardSummary struct {
	PendingPosts int `json:"pending_posts"`
	VeilleCount  int `json:"veille_count"`
	SelectedDays int `json:"selected_days"`
	TotalPosts   int `json:"total_posts"`
}
