package model

import "time"

// Platform identifies where a saved profile lives.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformX         Platform = "x"
	PlatformWebsite   Platform = "website"

	// legacyPlatformTwitter is rewritten to PlatformX on load.
	legacyPlatformTwitter Platform = "twitter"
)

// Platforms lists every valid platform in display order.
var Platforms = []Platform{
	PlatformInstagram,
	PlatformFacebook,
	PlatformX,
	PlatformTikTok,
	PlatformWebsite,
}

// Valid reports whether p is a known platform tag.
func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformX, PlatformWebsite:
		return true
	}
	return false
}

// Label returns the human-readable platform name used in lists and reports.
func (p Platform) Label() string {
	switch p {
	case PlatformInstagram:
		return "Instagram"
	case PlatformFacebook:
		return "Facebook"
	case PlatformTikTok:
		return "TikTok"
	case PlatformX:
		return "X"
	case PlatformWebsite:
		return "Web"
	default:
		return string(p)
	}
}

// Folder is a top-level grouping for categories. Categories may also be
// unfiled (no folder) until the orphan-migration pass assigns them one.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// Category is one node of the two-level hierarchy. A category without a
// ParentID is a root (and may carry a FolderID); one with a ParentID is a
// subcategory and inherits both folder and color from its parent.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	ParentID  string `json:"parentId,omitempty"`
	FolderID  string `json:"folderId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// IsRoot reports whether the category sits at the top of the hierarchy.
func (c Category) IsRoot() bool { return c.ParentID == "" }

// Profile is a saved social-media handle or website link. Username holds a
// bare handle, or a full URL for websites and pasted links. CategoryID may
// be empty after a cascading category delete.
type Profile struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName,omitempty"`
	Platform    Platform `json:"platform"`
	CategoryID  string   `json:"categoryId"`
	Notes       string   `json:"notes"`
	CreatedAt   int64    `json:"createdAt"`
}

// Title returns the name shown for the profile: display name if set,
// otherwise the username.
func (p Profile) Title() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// MigratePlatform maps legacy platform tags to current ones. Records saved
// before the twitter rename carry "twitter"; records without a platform
// default to instagram.
func MigratePlatform(p Platform) Platform {
	switch p {
	case legacyPlatformTwitter:
		return PlatformX
	case "":
		return PlatformInstagram
	}
	return p
}

// SortMode selects the ordering for category trees and profile lists.
type SortMode string

const (
	SortAZ     SortMode = "a-z"
	SortZA     SortMode = "z-a"
	SortNewest SortMode = "newest"
	SortOldest SortMode = "oldest"
	SortColor  SortMode = "color"
)

// PastelColors is the default category color palette.
var PastelColors = []string{
	"#FFB3BA", // red/pink
	"#FFDFBA", // orange
	"#FFFFBA", // yellow
	"#BAFFC9", // green
	"#BAE1FF", // blue
	"#E2BAFF", // purple
	"#F0F0F0", // gray
	"#C9C9FF", // indigo
}

// Now returns the current time in epoch milliseconds, the unit used for
// every CreatedAt field.
func Now() int64 {
	return time.Now().UnixMilli()
}
