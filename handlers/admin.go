// mediahub/handlers/admin.go
//
// Login, staff management, and site branding.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"mediahub/config"
	"mediahub/database"
	"mediahub/models"
	"mediahub/utils"
)

// HandleLogin authenticates by password alone. The password identifies the
// staff member; there is no username on the wire.
func HandleLogin(w http.ResponseWriter, r *http.Request, app App) {
	addr := utils.GetIPAddress(r)
	if !app.RateLimiter().Allow(addr) {
		app.Logger().Warn("Login rate limit exceeded", "addr", addr)
		respondError(w, http.StatusTooManyRequests, "Too many login attempts", app)
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if !decodeBody(w, r, app, &body) {
		return
	}
	if body.Password == "" {
		respondError(w, http.StatusBadRequest, "Password required", app)
		return
	}

	member, err := app.DB().FindStaffByPassword(body.Password)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, http.StatusUnauthorized, "Invalid password", app)
		return
	}
	if err != nil {
		respondStoreError(w, err, app)
		return
	}

	app.Logger().Info("Staff login", "staff_id", member.ID, "level", member.Level)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user": models.User{
			Level: member.Level,
			Name:  member.Name,
			Email: member.Email,
			Token: utils.NewToken(member.ID),
		},
		"message": "Login successful",
	}, app)
}

// --- Staff ---

func HandleListStaff(w http.ResponseWriter, r *http.Request, app App) {
	if !requireExactLevel(w, r, app, config.LevelOwner) {
		return
	}
	staff, err := app.DB().ListStaff()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if staff == nil {
		staff = []models.StaffMember{}
	}
	respondData(w, http.StatusOK, staff, app)
}

func HandleCreateStaff(w http.ResponseWriter, r *http.Request, app App) {
	if !requireExactLevel(w, r, app, config.LevelOwner) {
		return
	}
	var m models.StaffMember
	if !decodeBody(w, r, app, &m) {
		return
	}
	if m.ID == "" {
		m.ID = utils.NewID("staff")
	}
	if m.AddedDate.IsZero() {
		m.AddedDate = time.Now().UTC()
	}
	if err := m.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	if err := app.DB().CreateStaff(m); err != nil {
		respondStoreError(w, err, app)
		return
	}
	m.Password = ""
	respondData(w, http.StatusCreated, []models.StaffMember{m}, app)
}

func HandleDeleteStaff(w http.ResponseWriter, r *http.Request, app App) {
	if !requireExactLevel(w, r, app, config.LevelOwner) {
		return
	}
	if err := app.DB().DeleteStaff(r.URL.Query().Get("id")); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}

// --- Site Settings ---

func HandleGetSettings(w http.ResponseWriter, r *http.Request, app App) {
	s, err := app.DB().GetSettings()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, s, app)
}

func HandleUpdateSettings(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var s models.SiteSettings
	if !decodeBody(w, r, app, &s) {
		return
	}
	if err := s.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	stored, err := app.DB().UpsertSettings(s)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.SiteSettings{stored}, app)
}
