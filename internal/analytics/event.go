package analytics

import "time"

const (
	// TopicLinkCreated carries events for freshly minted short links.
	TopicLinkCreated = "link.created"
	// TopicLinkResolved carries events for visited short links.
	TopicLinkResolved = "link.resolved"
)

// LinkCreatedEvent is emitted when a short link is minted or re-fetched.
type LinkCreatedEvent struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Slug      string    `json:"slug"`
	Locale    string    `json:"locale"`
	Reused    bool      `json:"reused"`
	CreatedAt time.Time `json:"createdAt"`
	ClientIP  string    `json:"clientIp"`
	UserAgent string    `json:"userAgent"`
}

// LinkResolvedEvent is emitted when a short link is visited. Tier records
// which lookup tier verified the target article.
type LinkResolvedEvent struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Slug       string    `json:"slug"`
	Locale     string    `json:"locale"`
	Tier       string    `json:"tier"`
	ResolvedAt time.Time `json:"resolvedAt"`
	ClientIP   string    `json:"clientIp"`
	UserAgent  string    `json:"userAgent"`
	Referrer   string    `json:"referrer"`
}
