package models

type SocialNetwork string

const (
	NetworkLinkedIn  SocialNetwork = "LinkedIn"
	NetworkFacebook  SocialNetwork = "Facebook"
	NetworkInstagram SocialNetwork = "Instagram"
)

func AllNetworks() []SocialNetwork {
	return []SocialNetwork{NetworkLinkedIn, NetworkFacebook, NetworkInstagram}
}

type VisualType string

const (
	VisualImage  VisualType = "IMAGE"
	VisualVideo  VisualType = "VIDEO"
	VisualSpeech VisualType = "SPEECH"
)

func ValidVisualType(v string) bool {
	switch VisualType(v) {
	case VisualImage, VisualVideo, VisualSpeech:
		return true
	}
	return false
}

type PostStatus string

const (
	StatusPending   PostStatus = "PENDING"
	StatusApproved  PostStatus = "APPROVED"
	StatusPublished PostStatus = "PUBLISHED"
)

func ValidStatus(s string) bool {
	switch PostStatus(s) {
	case StatusPending, StatusApproved, StatusPublished:
		return true
	}
	return false
}

// SocialPost is one planned publication on the editorial calendar. JSON keys
// match the persisted snapshot format.
type SocialPost struct {
	ID                 string        `json:"id"`
	Day                string        `json:"day"`
	Network            SocialNetwork `json:"network"`
	Content            string        `json:"content"`
	SuggestedVisual    VisualType    `json:"suggestedVisual"`
	Status             PostStatus    `json:"status"`
	VisualURL          string        `json:"visualUrl,omitempty"`
	IsGeneratingVisual bool          `json:"isGeneratingVisual,omitempty"`
}
