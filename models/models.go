// mediahub/models/models.go
package models

import (
	"regexp"
	"strings"
	"time"
)

// --- Core Data Models ---

// MediaType is the tagged variant for a file's kind, computed once when the
// file is ingested and stored alongside it.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaAudio MediaType = "audio"
	MediaVideo MediaType = "video"
	MediaPDF   MediaType = "pdf"
)

var (
	audioExt = regexp.MustCompile(`(?i)\.(mp3|wav|ogg|m4a)$`)
	videoExt = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi)$`)
	pdfExt   = regexp.MustCompile(`(?i)\.pdf$`)
)

// DetectMediaType derives the media type from a MIME type and filename.
// Anything unrecognized is treated as an image.
func DetectMediaType(mimeType, filename string) MediaType {
	switch {
	case strings.Contains(mimeType, "audio") || audioExt.MatchString(filename):
		return MediaAudio
	case strings.Contains(mimeType, "video") || videoExt.MatchString(filename):
		return MediaVideo
	case strings.Contains(mimeType, "pdf") || pdfExt.MatchString(filename):
		return MediaPDF
	default:
		return MediaImage
	}
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Folder struct {
	ID         string `json:"id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

type File struct {
	ID         string    `json:"id"`
	FolderID   string    `json:"folder_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	MediaType  MediaType `json:"media_type"`
	URL        string    `json:"url"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Tags       string    `json:"tags,omitempty"`
	Likes      int       `json:"likes"`
	Approved   bool      `json:"approved"`
	UploadedBy string    `json:"uploaded_by,omitempty"`
	UploadDate time.Time `json:"upload_date"`
}

// FeaturedItem lives outside the category tree and is curated separately.
type FeaturedItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url"`
	Tags        string    `json:"tags,omitempty"`
	Likes       int       `json:"likes"`
	UploadDate  time.Time `json:"upload_date"`
}

// SliderImage ids are assigned by the store, unlike the tree entities.
type SliderImage struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

type Announcement struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	Highlight bool   `json:"highlight"`
	Image     string `json:"image,omitempty"`
}

type StaffMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Level     int       `json:"level"`
	Protected bool      `json:"protected"`
	AddedDate time.Time `json:"added_date"`
}

// SiteSettings is a singleton row, only ever upserted.
type SiteSettings struct {
	ID                int64  `json:"id"`
	BrandName         string `json:"brand_name"`
	HeroTitle         string `json:"hero_title"`
	HeroSubtitle      string `json:"hero_subtitle"`
	FooterDescription string `json:"footer_description"`
	FooterAddress     string `json:"footer_address"`
	FooterPhone       string `json:"footer_phone"`
	FooterEmail       string `json:"footer_email"`
	FooterCopyright   string `json:"footer_copyright"`
	FacebookLink      string `json:"facebook_link"`
	TwitterLink       string `json:"twitter_link"`
	InstagramLink     string `json:"instagram_link"`
	YoutubeLink       string `json:"youtube_link"`
}

// User is the authenticated identity returned by a successful login.
type User struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// --- Partial Updates ---
//
// PUT bodies carry only the fields being changed; nil means "leave as is".

type CategoryUpdate struct {
	Name *string `json:"name,omitempty"`
	Icon *string `json:"icon,omitempty"`
}

type FolderUpdate struct {
	Name       *string `json:"name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

type FileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
	Tags      *string `json:"tags,omitempty"`
	Likes     *int    `json:"likes,omitempty"`
	Approved  *bool   `json:"approved,omitempty"`
	FolderID  *string `json:"folder_id,omitempty"`
}

type FeaturedUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Tags        *string `json:"tags,omitempty"`
	Likes       *int    `json:"likes,omitempty"`
	URL         *string `json:"url,omitempty"`
}

type SliderUpdate struct {
	URL *string `json:"url,omitempty"`
}

// LikesOnly reports whether the update touches nothing but the like counter.
// Like increments are the one file mutation open to public viewers.
func (u FileUpdate) LikesOnly() bool {
	return u.Likes != nil && u.Name == nil && u.Thumbnail == nil &&
		u.Tags == nil && u.Approved == nil && u.FolderID == nil
}

func (u FeaturedUpdate) LikesOnly() bool {
	return u.Likes != nil && u.Title == nil && u.Description == nil &&
		u.Tags == nil && u.URL == nil
}
