package models

// Platform values carried by catalog records.
const (
	PlatformInstagram = "Instagram"
	PlatformYouTube   = "YouTube"
	PlatformTikTok    = "TikTok"
)

// Tier is a follower-count bucket.
type Tier string

const (
	TierNano  Tier = "Nano"
	TierMicro Tier = "Micro"
	TierMacro Tier = "Macro"
	TierMega  Tier = "Mega"
)

// Influencer is an immutable catalog record. Metric fields are display
// strings ("42.5K", "4.8%").
type Influencer struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Handle         string   `json:"handle"`
	Platform       string   `json:"platform"`
	Location       string   `json:"location"`
	Followers      string   `json:"followers"`
	EngagementRate string   `json:"er"`
	AvgLikes       string   `json:"likes"`
	EstValue       string   `json:"value"`
	AvatarURL      string   `json:"avatarUrl"`
	Niche          []string `json:"niche"`
}

// ScoredInfluencer is a view model derived on every ranking request.
type ScoredInfluencer struct {
	Influencer
	MatchScore   int      `json:"matchScore"`
	MatchDetails []string `json:"matchDetails"`
}
