// mediahub/client/content.go
//
// Mutations on curated content: featured media, the hero slider,
// announcements, staff, and site branding.
package client

import (
	"context"
	"errors"
	"time"

	"mediahub/models"
	"mediahub/utils"
)

// --- Featured media ---

// AddFeatured curates a featured item outside the category tree.
func (ws *Workspace) AddFeatured(ctx context.Context, title, description, url, tags string) (models.FeaturedItem, error) {
	item := models.FeaturedItem{
		ID:          utils.NewID("featured"),
		Title:       title,
		Description: description,
		URL:         url,
		Tags:        tags,
		UploadDate:  time.Now().UTC(),
	}
	err := ws.run(ctx, mutation{
		op:       OpManageFeatured,
		validate: item.Validate,
		apply: func() {
			ws.featured = append(ws.featured, item)
		},
		revert: func() {
			if i := ws.featuredIndex(item.ID); i >= 0 {
				ws.featured = append(ws.featured[:i], ws.featured[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateFeatured(ctx, item)
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFeatured(item.ID, created)
				item = created
			}
			return nil
		},
		reload: ws.reloadFeatured,
	})
	return item, err
}

func (ws *Workspace) DeleteFeatured(ctx context.Context, id string) error {
	var removed models.FeaturedItem
	var at int
	return ws.run(ctx, mutation{
		op: OpManageFeatured,
		validate: func() error {
			if _, ok := ws.lookupFeatured(id); !ok {
				return &NotFoundError{Kind: "featured item", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.featuredIndex(id); i >= 0 {
				at = i
				removed = ws.featured[i]
				ws.featured = append(ws.featured[:i], ws.featured[i+1:]...)
			}
		},
		revert: func() {
			ws.featured = append(ws.featured[:at], append([]models.FeaturedItem{removed}, ws.featured[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteFeatured(ctx, id)
		},
		reload: ws.reloadFeatured,
	})
}

// --- Slider images ---

// AddSliderImage appends one image to the hero rotation. The store assigns
// the real id; the optimistic entry carries a placeholder until the
// authoritative row replaces it.
func (ws *Workspace) AddSliderImage(ctx context.Context, url string) (models.SliderImage, error) {
	image := models.SliderImage{ID: 0, URL: url}
	err := ws.run(ctx, mutation{
		op:       OpManageSlider,
		validate: image.Validate,
		apply: func() {
			// A fresh upload displaces the synthetic fallback pair.
			if ws.sliderIsFallback() {
				ws.slider = nil
			}
			ws.slider = append(ws.slider, image)
		},
		revert: func() {
			for i, s := range ws.slider {
				if s.ID == 0 && s.URL == url {
					ws.slider = append(ws.slider[:i], ws.slider[i+1:]...)
					break
				}
			}
			if len(ws.slider) == 0 {
				ws.slider = defaultSlider()
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateSliderImage(ctx, url)
			if err != nil {
				return err
			}
			if ok {
				ws.mu.Lock()
				for i, s := range ws.slider {
					if s.ID == 0 && s.URL == url {
						ws.slider[i] = created
						break
					}
				}
				ws.mu.Unlock()
				image = created
			}
			return nil
		},
		reload: ws.reloadSlider,
	})
	return image, err
}

// AddSliderImages uploads a batch, continuing past individual failures, then
// reloads the authoritative ordering from the store.
func (ws *Workspace) AddSliderImages(ctx context.Context, urls []string) ([]models.SliderImage, error) {
	var added []models.SliderImage
	var errs []error
	for _, url := range urls {
		image, err := ws.AddSliderImage(ctx, url)
		if err != nil {
			ws.logger.Warn("Slider image upload failed", "url", url, "error", err)
			errs = append(errs, err)
			continue
		}
		added = append(added, image)
	}
	if len(added) > 0 {
		if err := ws.reloadSlider(ctx); err != nil {
			ws.logger.Warn("Failed to reload slider after batch upload", "error", err)
		}
	}
	return added, errors.Join(errs...)
}

// DeleteSliderImage removes a store-backed image. The synthetic fallback
// entries cannot be deleted, and the rotation falls back to the default pair
// rather than going empty.
func (ws *Workspace) DeleteSliderImage(ctx context.Context, id int64) error {
	if id <= 0 {
		return &ValidationError{Reason: "cannot delete a fallback slider image"}
	}
	var removed models.SliderImage
	var at int
	return ws.run(ctx, mutation{
		op: OpManageSlider,
		validate: func() error {
			if _, ok := ws.lookupSlider(id); !ok {
				return &NotFoundError{Kind: "slider image"}
			}
			return nil
		},
		apply: func() {
			for i, s := range ws.slider {
				if s.ID == id {
					at = i
					removed = s
					ws.slider = append(ws.slider[:i], ws.slider[i+1:]...)
					break
				}
			}
			if len(ws.slider) == 0 {
				ws.slider = defaultSlider()
			}
		},
		revert: func() {
			if ws.sliderIsFallback() {
				ws.slider = nil
			}
			if at > len(ws.slider) {
				at = len(ws.slider)
			}
			ws.slider = append(ws.slider[:at], append([]models.SliderImage{removed}, ws.slider[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteSliderImage(ctx, id)
		},
		reload: ws.reloadSlider,
	})
}

// --- Announcements ---

func (ws *Workspace) AddAnnouncement(ctx context.Context, title, content string, highlight bool, image string) (models.Announcement, error) {
	ann := models.Announcement{
		ID:        utils.NewID("ann"),
		Date:      time.Now().UTC().Format("2006-01-02"),
		Title:     title,
		Content:   content,
		Highlight: highlight,
		Image:     image,
	}
	err := ws.run(ctx, mutation{
		op:       OpManageAnnouncements,
		validate: ann.Validate,
		apply: func() {
			ws.announcements = append(ws.announcements, ann)
		},
		revert: func() {
			if i := ws.announcementIndex(ann.ID); i >= 0 {
				ws.announcements = append(ws.announcements[:i], ws.announcements[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateAnnouncement(ctx, ann)
			if err != nil {
				return err
			}
			if ok {
				ws.mu.Lock()
				if i := ws.announcementIndex(ann.ID); i >= 0 {
					ws.announcements[i] = created
				}
				ws.mu.Unlock()
				ann = created
			}
			return nil
		},
		reload: ws.reloadAnnouncements,
	})
	return ann, err
}

func (ws *Workspace) DeleteAnnouncement(ctx context.Context, id string) error {
	var removed models.Announcement
	var at int
	return ws.run(ctx, mutation{
		op: OpManageAnnouncements,
		validate: func() error {
			ws.mu.RLock()
			defer ws.mu.RUnlock()
			if ws.announcementIndex(id) < 0 {
				return &NotFoundError{Kind: "announcement", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.announcementIndex(id); i >= 0 {
				at = i
				removed = ws.announcements[i]
				ws.announcements = append(ws.announcements[:i], ws.announcements[i+1:]...)
			}
		},
		revert: func() {
			ws.announcements = append(ws.announcements[:at], append([]models.Announcement{removed}, ws.announcements[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteAnnouncement(ctx, id)
		},
		reload: ws.reloadAnnouncements,
	})
}

// --- Staff ---

// AddStaff appends a staff member. Owner-only; the guard checks level
// equality with 3, not a floor.
func (ws *Workspace) AddStaff(ctx context.Context, name, email, password string, level int) (models.StaffMember, error) {
	member := models.StaffMember{
		ID:        utils.NewID("staff"),
		Name:      name,
		Email:     email,
		Password:  password,
		Level:     level,
		AddedDate: time.Now().UTC(),
	}
	err := ws.run(ctx, mutation{
		op:       OpManageStaff,
		validate: member.Validate,
		apply: func() {
			ws.staff = append(ws.staff, member)
		},
		revert: func() {
			if i := ws.staffIndex(member.ID); i >= 0 {
				ws.staff = append(ws.staff[:i], ws.staff[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateStaff(ctx, member)
			if err != nil {
				return err
			}
			if ok {
				ws.mu.Lock()
				if i := ws.staffIndex(member.ID); i >= 0 {
					ws.staff[i] = created
				}
				ws.mu.Unlock()
				member = created
			}
			return nil
		},
		reload: ws.reloadStaff,
	})
	member.Password = ""
	return member, err
}

// RemoveStaff deletes a staff member. The protected owner record is refused
// by the store; the optimistic removal rolls back.
func (ws *Workspace) RemoveStaff(ctx context.Context, id string) error {
	var removed models.StaffMember
	var at int
	return ws.run(ctx, mutation{
		op: OpManageStaff,
		validate: func() error {
			ws.mu.RLock()
			defer ws.mu.RUnlock()
			if ws.staffIndex(id) < 0 {
				return &NotFoundError{Kind: "staff member", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.staffIndex(id); i >= 0 {
				at = i
				removed = ws.staff[i]
				ws.staff = append(ws.staff[:i], ws.staff[i+1:]...)
			}
		},
		revert: func() {
			ws.staff = append(ws.staff[:at], append([]models.StaffMember{removed}, ws.staff[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteStaff(ctx, id)
		},
		reload: ws.reloadStaff,
	})
}

// --- Branding ---

// UpdateBranding replaces the site settings singleton.
func (ws *Workspace) UpdateBranding(ctx context.Context, s models.SiteSettings) error {
	var previous models.SiteSettings
	return ws.run(ctx, mutation{
		op:       OpEditBranding,
		validate: s.Validate,
		apply: func() {
			previous = ws.settings
			ws.settings = s
		},
		revert: func() {
			ws.settings = previous
		},
		call: func(ctx context.Context) error {
			stored, ok, err := ws.gw.PutSettings(ctx, s)
			if err != nil {
				return err
			}
			if ok {
				ws.mu.Lock()
				ws.settings = stored
				ws.mu.Unlock()
			}
			return nil
		},
	})
}

// --- Lookup helpers ---

func (ws *Workspace) featuredIndex(id string) int {
	for i, item := range ws.featured {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func (ws *Workspace) announcementIndex(id string) int {
	for i, a := range ws.announcements {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (ws *Workspace) staffIndex(id string) int {
	for i, m := range ws.staff {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (ws *Workspace) lookupFeatured(id string) (models.FeaturedItem, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if i := ws.featuredIndex(id); i >= 0 {
		return ws.featured[i], true
	}
	return models.FeaturedItem{}, false
}

func (ws *Workspace) lookupSlider(id int64) (models.SliderImage, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	for _, s := range ws.slider {
		if s.ID == id {
			return s, true
		}
	}
	return models.SliderImage{}, false
}

// sliderIsFallback reports whether the rotation currently shows only the
// synthetic default pair. Callers hold ws.mu.
func (ws *Workspace) sliderIsFallback() bool {
	for _, s := range ws.slider {
		if s.ID > 0 {
			return false
		}
	}
	return len(ws.slider) > 0
}

func (ws *Workspace) replaceFeatured(id string, item models.FeaturedItem) {
	ws.mu.Lock()
	if i := ws.featuredIndex(id); i >= 0 {
		ws.featured[i] = item
	}
	ws.mu.Unlock()
}
