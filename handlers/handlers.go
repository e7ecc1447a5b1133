// mediahub/handlers/handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"mediahub/config"
	"mediahub/database"
	"mediahub/models"
	"mediahub/utils"
)

// App is an interface that defines the dependencies our handlers need.
type App interface {
	DB() *database.StoreService
	Storage() models.StorageService
	RateLimiter() *models.RateLimiter
	Logger() *slog.Logger
	UploadDir() string
}

// respondJSON sends a JSON response with a given status code.
func respondJSON(w http.ResponseWriter, status int, payload interface{}, app App) {
	response, err := json.Marshal(payload)
	if err != nil {
		app.Logger().Error("Failed to marshal JSON payload", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte(`{"error":"Failed to marshal JSON response"}`)); werr != nil {
			app.Logger().Error("Failed to write internal server error response", "error", werr)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(response); err != nil {
		app.Logger().Error("Failed to write JSON response", "error", err)
	}
}

// respondData wraps a payload in the {"data": ...} envelope all resource
// endpoints use.
func respondData(w http.ResponseWriter, status int, payload interface{}, app App) {
	respondJSON(w, status, map[string]interface{}{"data": payload}, app)
}

func respondError(w http.ResponseWriter, status int, message string, app App) {
	respondJSON(w, status, map[string]string{"error": message}, app)
}

// respondStoreError maps store failures onto the wire contract.
func respondStoreError(w http.ResponseWriter, err error, app App) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found", app)
	case errors.Is(err, database.ErrProtectedStaff):
		respondError(w, http.StatusForbidden, "Cannot delete protected staff member", app)
	default:
		app.Logger().Error("Store operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error", app)
	}
}

// MakeHandler adapts a handler needing the App interface to http.HandlerFunc.
func MakeHandler(app App, fn func(http.ResponseWriter, *http.Request, App)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, app)
	}
}

// requireLevel enforces a minimum role level. It writes the 403 contract
// response and returns false when the caller falls short.
func requireLevel(w http.ResponseWriter, r *http.Request, app App, min int) bool {
	if RoleLevel(r) < min {
		respondError(w, http.StatusForbidden, "Insufficient permissions", app)
		return false
	}
	return true
}

// requireExactLevel is the stricter form used by staff management, which is
// owner-only rather than owner-and-up.
func requireExactLevel(w http.ResponseWriter, r *http.Request, app App, level int) bool {
	if RoleLevel(r) != level {
		respondError(w, http.StatusForbidden, "Insufficient permissions", app)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, app App, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", app)
		return false
	}
	return true
}

// ingestMediaURL stores inline data-URL payloads through the blob storage
// service and returns the resulting public URL. Plain URLs pass through.
func ingestMediaURL(r *http.Request, app App, rawURL, idHint string) (string, error) {
	if !utils.IsDataURL(rawURL) {
		return rawURL, nil
	}
	contentType, data, err := utils.DecodeDataURL(rawURL)
	if err != nil {
		return "", err
	}
	if len(data) > config.MaxUploadSize {
		return "", fmt.Errorf("payload exceeds %d bytes", config.MaxUploadSize)
	}
	filename := idHint + utils.ExtForContentType(contentType)
	return app.Storage().Save(r.Context(), filename, data, contentType)
}

// removeStoredBlob best-effort deletes a blob that our storage service owns.
// External URLs (including the default slider set) are left alone.
func removeStoredBlob(r *http.Request, app App, url string) {
	if url == "" || utils.IsDataURL(url) {
		return
	}
	if err := app.Storage().Remove(r.Context(), url); err != nil {
		app.Logger().Warn("Failed to remove stored blob", "url", url, "error", err)
	}
}

// --- Categories ---

func HandleListCategories(w http.ResponseWriter, r *http.Request, app App) {
	cats, err := app.DB().ListCategories()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if cats == nil {
		cats = []models.Category{}
	}
	respondData(w, http.StatusOK, cats, app)
}

func HandleCreateCategory(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var c models.Category
	if !decodeBody(w, r, app, &c) {
		return
	}
	if c.ID == "" {
		c.ID = utils.NewID("cat")
	}
	if err := c.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	if err := app.DB().CreateCategory(c); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.Category{c}, app)
}

func HandleUpdateCategory(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var u models.CategoryUpdate
	if !decodeBody(w, r, app, &u) {
		return
	}
	c, err := app.DB().UpdateCategory(r.URL.Query().Get("id"), u)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.Category{c}, app)
}

func HandleDeleteCategory(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	if err := app.DB().DeleteCategory(r.URL.Query().Get("id")); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}

// --- Folders ---

func HandleListFolders(w http.ResponseWriter, r *http.Request, app App) {
	folders, err := app.DB().ListFolders()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	respondData(w, http.StatusOK, folders, app)
}

func HandleCreateFolder(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelMember) {
		return
	}
	var f models.Folder
	if !decodeBody(w, r, app, &f) {
		return
	}
	if f.ID == "" {
		f.ID = utils.NewID("fol")
	}
	if err := f.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}
	if err := app.DB().CreateFolder(f); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusBadRequest, "Parent category does not exist", app)
			return
		}
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.Folder{f}, app)
}

func HandleUpdateFolder(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	var u models.FolderUpdate
	if !decodeBody(w, r, app, &u) {
		return
	}
	f, err := app.DB().UpdateFolder(r.URL.Query().Get("id"), u)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.Folder{f}, app)
}

func HandleDeleteFolder(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	if err := app.DB().DeleteFolder(r.URL.Query().Get("id")); err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}

// --- Files ---

func HandleListFiles(w http.ResponseWriter, r *http.Request, app App) {
	files, err := app.DB().ListFiles()
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	if files == nil {
		files = []models.File{}
	}
	respondData(w, http.StatusOK, files, app)
}

func HandleCreateFile(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelMember) {
		return
	}
	var f models.File
	if !decodeBody(w, r, app, &f) {
		return
	}
	if f.ID == "" {
		f.ID = utils.NewID("file")
	}
	if f.MediaType == "" {
		f.MediaType = models.DetectMediaType("", f.Name)
	}
	if f.UploadDate.IsZero() {
		f.UploadDate = time.Now().UTC()
	}
	// Member uploads enter the moderation queue; editors publish directly.
	f.Approved = RoleLevel(r) >= config.LevelEditor
	if err := f.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), app)
		return
	}

	url, err := ingestMediaURL(r, app, f.URL, f.ID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid media payload", app)
		return
	}
	f.URL = url
	if f.Thumbnail != "" {
		thumb, err := ingestMediaURL(r, app, f.Thumbnail, f.ID+"_thumb")
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid thumbnail payload", app)
			return
		}
		f.Thumbnail = thumb
	}

	if err := app.DB().CreateFile(f); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusBadRequest, "Parent folder does not exist", app)
			return
		}
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusCreated, []models.File{f}, app)
}

func HandleUpdateFile(w http.ResponseWriter, r *http.Request, app App) {
	var u models.FileUpdate
	if !decodeBody(w, r, app, &u) {
		return
	}
	// Like increments are open to everyone; any other change is editor-only.
	if !u.LikesOnly() && !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	f, err := app.DB().UpdateFile(r.URL.Query().Get("id"), u)
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	respondData(w, http.StatusOK, []models.File{f}, app)
}

func HandleDeleteFile(w http.ResponseWriter, r *http.Request, app App) {
	if !requireLevel(w, r, app, config.LevelEditor) {
		return
	}
	url, thumbnail, err := app.DB().DeleteFile(r.URL.Query().Get("id"))
	if err != nil {
		respondStoreError(w, err, app)
		return
	}
	removeStoredBlob(r, app, url)
	removeStoredBlob(r, app, thumbnail)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true}, app)
}
