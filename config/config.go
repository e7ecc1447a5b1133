// mediahub/config/config.go
package config

const (
	AppVersion = "0.4.1"

	// RoleLevelHeader carries the caller's role level on every API request.
	RoleLevelHeader = "x-user-level"

	// Role Levels
	LevelPublic = 0
	LevelMember = 1
	LevelEditor = 2
	LevelOwner  = 3

	// Form & Field Limits
	MaxNameLen    = 120
	MaxTitleLen   = 150
	MaxContentLen = 4000
	MaxTagsLen    = 500

	// Upload Limits
	MaxUploadSize = 15 * 1024 * 1024 // 15MB decoded

	// Initial full-state load ceiling. After this the client proceeds with
	// whatever partial state has loaded.
	DefaultLoadTimeout = "10s"

	// Client-local state files (persisted under the workspace state dir).
	AuthStateFile  = "auth.json"
	LikeLedgerFile = "liked_items.json"

	// Login Rate Limiting Defaults
	DefaultRateLimitEvery  = "5s"
	DefaultRateLimitBurst  = 5
	DefaultRateLimitPrune  = "1h"
	DefaultRateLimitExpire = "24h"
)

// DefaultSliderImages is the fixed fallback pair substituted whenever the
// remote slider collection is empty or unreachable. The public hero banner
// never rotates through an empty set.
var DefaultSliderImages = []string{
	"https://images.unsplash.com/photo-1438232992991-995b7058bbb3?q=80&w=2073",
	"https://images.unsplash.com/photo-1543791959-12b3f543282a?q=80&w=2070",
}

// DefaultCategories seeds a fresh database with the standard library layout.
var DefaultCategories = []struct {
	ID   string
	Name string
	Icon string
}{
	{"cat_photos", "Photos", "fas fa-camera"},
	{"cat_videos", "Videos", "fas fa-video"},
	{"cat_audio", "Audio", "fas fa-headphones"},
	{"cat_pdfs", "PDFs", "fas fa-file-pdf"},
}
