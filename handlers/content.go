// mediahub/handlers/content.go
//
// Handlers for the curated content outside the category tree: featured
// media, the hero slider, and announcements.
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"mediahub/config"
	"mediahub/models"
	"mediahub/utils"
)

// --- Featured Media ---

func HandleListFeatured(w http.ResponseWriter, r *http.Request, app App) {
	items, err := app.DB().ListFeatured()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if items == nil {
		items = []models.FeaturedItem{}
	}
	respondData(w, http.StatusOK, items, app)
}

func HandleCreateFeatured(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var i models.FeaturedItem
	if !decodeBody(w, r, app, &i) {
		return
	}
	if i.ID == "" {
		i.ID = utils.NewID("featured")
	}
	if i.UploadDate.IsZero() {
		i.UploadDate = time.Now().UTC()
	}
	if err := i.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	url, err := ingestMediaURL(r, app, i.URL, i.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid media payload", app)
		return
	}
	i.URL = url
	if err := app.DB().CreateFeatured(i); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.FeaturedItem{i}, app)
}

func HandleUpdateFeatured(w http.ResponseWriter, r *http.Request, app App) {
	var u models.FeaturedUpdate
	if !decodeBody(w, r, app, &u) {
		return
	}
	if !u.LikesOnly() && !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	i, err := app.DB().UpdateFeatured(r.URL.Query().Get("id"), u)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.FeaturedItem{i}, app)
}

func HandleDeleteFeatured(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	url, err := app.DB().DeleteFeatured(r.URL.Query().Get("id"))
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	removeStoredBlob(r, app, url)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}

// --- Slider Images ---

func HandleListSlider(w http.ResponseWriter, r *http.Request, app App) {
	images, err := app.DB().ListSliderImages()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if images == nil {
		images = []models.SliderImage{}
	}
	respondData(w, http.StatusOK, images, app)
}

func HandleCreateSlider(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var body models.SliderImage
	if !decodeBody(w, r, app, &body) {
		return
	}
	if err := body.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	url, err := ingestMediaURL(r, app, body.URL, utils.NewID("slider"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid media payload", app)
		return
	}
	created, err := app.DB().CreateSliderImage(url)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.SliderImage{created}, app)
}

func sliderID(w http.ResponseWriter, r *http.Request, app App) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid slider image id", app)
		return 0, false
	}
	return id, true
}

func HandleUpdateSlider(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	id, ok := sliderID(w, r, app)
	if !ok {
		return
	}
	var u models.SliderUpdate
	if !decodeBody(w, r, app, &u) {
		return
	}
	s, err := app.DB().UpdateSliderImage(id, u)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.SliderImage{s}, app)
}

func HandleDeleteSlider(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	id, ok := sliderID(w, r, app)
	if !ok {
		return
	}
	url, err := app.DB().DeleteSliderImage(id)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	removeStoredBlob(r, app, url)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}

// --- Announcements ---

func HandleListAnnouncements(w http.ResponseWriter, r *http.Request, app App) {
	anns, err := app.DB().ListAnnouncements()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if anns == nil {
		anns = []models.Announcement{}
	}
	respondData(w, http.StatusOK, anns, app)
}

func HandleCreateAnnouncement(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var a models.Announcement
	if !decodeBody(w, r, app, &a) {
		return
	}
	if a.ID == "" {
		a.ID = utils.NewID("ann")
	}
	if a.Date == "" {
		a.Date = time.Now().UTC().Format("2006-01-02")
	}
	if err := a.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	if a.Image != "" {
		image, err := ingestMediaURL(r, app, a.Image, a.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid image payload", app)
			return
		}
		a.Image = image
	}
	if err := app.DB().CreateAnnouncement(a); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.Announcement{a}, app)
}

func HandleDeleteAnnouncement(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	if err := app.DB().DeleteAnnouncement(r.URL.Query().Get("id")); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}
