package types

// Calendar event status values (content pipeline order)
const (
	StatusIdea      = "idea"
	StatusScripting = "scripting"
	StatusFilming   = "filming"
	StatusEditing   = "editing"
	StatusScheduled = "scheduled"
	StatusPosted    = "posted"
)

// Idea status values
const (
	IdeaNew      = "new"
	IdeaApproved = "approved"
	IdeaRejected = "rejected"
	IdeaPromoted = "promoted"
)

// Script status values
const (
	ScriptDraft = "draft"
	ScriptFinal = "final"
)

// Platform values
const (
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformTwitter   = "twitter"
	PlatformLinkedIn  = "linkedin"
	PlatformOther     = "other"
)

var ValidEventStatuses = []string{
	StatusIdea, StatusScripting, StatusFilming,
	StatusEditing, StatusScheduled, StatusPosted,
}

var ValidIdeaStatuses = []string{
	IdeaNew, IdeaApproved, IdeaRejected, IdeaPromoted,
}

var ValidScriptStatuses = []string{ScriptDraft, ScriptFinal}

var ValidPlatforms = []string{
	PlatformYouTube, PlatformTikTok, PlatformInstagram,
	PlatformTwitter, PlatformLinkedIn, PlatformOther,
}

func IsValidEventStatus(status string) bool {
	return contains(ValidEventStatuses, status)
}

func IsValidIdeaStatus(status string) bool {
	return contains(ValidIdeaStatuses, status)
}

func IsValidScriptStatus(status string) bool {
	return contains(ValidScriptStatuses, status)
}

func IsValidPlatform(platform string) bool {
	return contains(ValidPlatforms, platform)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
