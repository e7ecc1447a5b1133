// mediahub/models/models_test.go
package models

import "testing"

func TestDetectMediaType(t *testing.T) {
	cases := []struct {
		name     string
		mimeType string
		filename string
		want     MediaType
	}{
		{"AudioMime", "audio/mpeg", "song.bin", MediaAudio},
		{"AudioExt", "", "song.MP3", MediaAudio},
		{"VideoMime", "video/mp4", "clip", MediaVideo},
		{"VideoExt", "", "clip.webm", MediaVideo},
		{"PDFMime", "application/pdf", "doc", MediaPDF},
		{"PDFExt", "", "doc.pdf", MediaPDF},
		{"ImageDefault", "image/png", "pic.png", MediaImage},
		{"UnknownDefaultsToImage", "", "mystery", MediaImage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMediaType(tc.mimeType, tc.filename); got != tc.want {
				t.Errorf("DetectMediaType(%q, %q) = %q, want %q", tc.mimeType, tc.filename, got, tc.want)
			}
		})
	}
}

func TestLikesOnly(t *testing.T) {
	likes := 5
	name := "x"

	if !(FileUpdate{Likes: &likes}).LikesOnly() {
		t.Error("Likes-only update not recognized")
	}
	if (FileUpdate{Likes: &likes, Name: &name}).LikesOnly() {
		t.Error("Update touching the name must not pass as likes-only")
	}
	if (FileUpdate{}).LikesOnly() {
		t.Error("Empty update must not pass as likes-only")
	}
	if !(FeaturedUpdate{Likes: &likes}).LikesOnly() {
		t.Error("Featured likes-only update not recognized")
	}
	if (FeaturedUpdate{Likes: &likes, Title: &name}).LikesOnly() {
		t.Error("Featured update touching the title must not pass as likes-only")
	}
}

func TestValidation(t *testing.T) {
	if err := (Category{ID: "cat_1", Name: "Photos"}).Validate(); err != nil {
		t.Errorf("Valid category rejected: %v", err)
	}
	if err := (Category{ID: "cat_1"}).Validate(); err == nil {
		t.Error("Category without a name should be rejected")
	}
	if err := (StaffMember{ID: "s", Name: "Ed", Email: "not-an-email", Password: "p", Level: 2}).Validate(); err == nil {
		t.Error("Staff member with a bad email should be rejected")
	}
	if err := (StaffMember{ID: "s", Name: "Ed", Email: "ed@example.com", Password: "p", Level: 9}).Validate(); err == nil {
		t.Error("Staff level above the ceiling should be rejected")
	}
}
