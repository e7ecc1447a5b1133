// mediahub/client/workspace.go
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"mediahub/config"
	"mediahub/models"
)

// ConfirmFunc is consulted before a cascading delete removes a parent that
// still owns children. Returning false aborts the delete untouched.
type ConfirmFunc func(kind, name string, children int) bool

// Workspace mirrors the remote content store in memory and coordinates
// optimistic mutations against it. All collections are owned here; nothing
// else holds ambient state.
type Workspace struct {
	gw       *Gateway
	logger   *slog.Logger
	stateDir string
	ledger   *Ledger

	confirm     ConfirmFunc
	loadTimeout time.Duration

	mu            sync.RWMutex
	user          *models.User
	categories    []models.Category
	folders       []models.Folder
	files         []models.File
	featured      []models.FeaturedItem
	slider        []models.SliderImage
	announcements []models.Announcement
	staff         []models.StaffMember
	settings      models.SiteSettings

	// Independent cursors for the admin dashboard and the public gallery.
	Admin  *Cursor
	Public *Cursor
}

type authState struct {
	User models.User `json:"user"`
}

// NewWorkspace builds a workspace talking to the store at baseURL, with
// viewer-local state (auth, like ledger) persisted under stateDir. A
// previously saved credential is restored.
func NewWorkspace(baseURL, stateDir string, logger *slog.Logger) (*Workspace, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}
	ledger, err := OpenLedger(filepath.Join(stateDir, config.LikeLedgerFile))
	if err != nil {
		return nil, err
	}

	loadTimeout, _ := time.ParseDuration(config.DefaultLoadTimeout)
	ws := &Workspace{
		gw:          NewGateway(baseURL),
		logger:      logger,
		stateDir:    stateDir,
		ledger:      ledger,
		loadTimeout: loadTimeout,
	}
	ws.Admin = newCursor(ws)
	ws.Public = newCursor(ws)

	if state, err := ws.readAuthState(); err == nil {
		ws.user = &state.User
		ws.gw.SetAuth(state.User.Token, state.User.Level)
	}
	return ws, nil
}

// SetConfirmFunc installs the hook consulted before cascading deletes.
func (ws *Workspace) SetConfirmFunc(fn ConfirmFunc) { ws.confirm = fn }

// SetLoadTimeout overrides the initial-load ceiling.
func (ws *Workspace) SetLoadTimeout(d time.Duration) { ws.loadTimeout = d }

// Gateway exposes the underlying gateway, mainly for level inspection.
func (ws *Workspace) Gateway() *Gateway { return ws.gw }

// --- Auth ---

func (ws *Workspace) authPath() string {
	return filepath.Join(ws.stateDir, config.AuthStateFile)
}

func (ws *Workspace) readAuthState() (authState, error) {
	var state authState
	raw, err := os.ReadFile(ws.authPath())
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return state, err
	}
	return state, nil
}

// Login authenticates against the store and persists the credential so it
// survives restarts.
func (ws *Workspace) Login(ctx context.Context, password string) (models.User, error) {
	user, err := ws.gw.Login(ctx, password)
	if err != nil {
		return models.User{}, err
	}
	ws.gw.SetAuth(user.Token, user.Level)

	ws.mu.Lock()
	ws.user = &user
	ws.mu.Unlock()

	raw, err := json.Marshal(authState{User: user})
	if err == nil {
		err = os.WriteFile(ws.authPath(), raw, 0600)
	}
	if err != nil {
		ws.logger.Warn("Failed to persist auth state", "error", err)
	}
	return user, nil
}

// Logout clears the credential and removes the persisted auth state.
func (ws *Workspace) Logout() {
	ws.gw.ClearAuth()
	ws.mu.Lock()
	ws.user = nil
	ws.mu.Unlock()
	if err := os.Remove(ws.authPath()); err != nil && !os.IsNotExist(err) {
		ws.logger.Warn("Failed to remove auth state", "error", err)
	}
}

// User returns the authenticated identity, if any.
func (ws *Workspace) User() *models.User {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if ws.user == nil {
		return nil
	}
	u := *ws.user
	return &u
}

// --- Initial load ---

// LoadAll fetches every collection from the store, bounded by the load
// timeout. Each collection loads independently; individual failures are
// logged and swallowed so the workspace proceeds with partial state. The
// slider never stays empty: the default pair substitutes for an empty or
// unreachable collection.
func (ws *Workspace) LoadAll(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, ws.loadTimeout)
	defer cancel()

	load := func(name string, fn func() error) {
		if err := fn(); err != nil {
			ws.logger.Warn("Failed to load collection", "collection", name, "error", err)
		}
	}

	load("categories", func() error { return ws.reloadCategories(ctx) })
	load("folders", func() error { return ws.reloadFolders(ctx) })
	load("files", func() error { return ws.reloadFiles(ctx) })
	load("featured", func() error { return ws.reloadFeatured(ctx) })
	load("slider", func() error { return ws.reloadSlider(ctx) })
	load("announcements", func() error { return ws.reloadAnnouncements(ctx) })
	load("settings", func() error {
		s, err := ws.gw.Settings(ctx)
		if err != nil {
			return err
		}
		ws.mu.Lock()
		ws.settings = s
		ws.mu.Unlock()
		return nil
	})
	if ws.gw.Level() == config.LevelOwner {
		load("staff", func() error { return ws.reloadStaff(ctx) })
	}

	ws.mu.Lock()
	if len(ws.slider) == 0 {
		ws.slider = defaultSlider()
	}
	ws.mu.Unlock()
}

func defaultSlider() []models.SliderImage {
	images := make([]models.SliderImage, len(config.DefaultSliderImages))
	for i, url := range config.DefaultSliderImages {
		// Synthetic negative ids keep the fallback distinguishable from
		// store-assigned rows.
		images[i] = models.SliderImage{ID: int64(-(i + 1)), URL: url}
	}
	return images
}

// --- Collection reloads ---

func (ws *Workspace) reloadCategories(ctx context.Context) error {
	cats, err := ws.gw.Categories(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.categories = cats
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadFolders(ctx context.Context) error {
	folders, err := ws.gw.Folders(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.folders = folders
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadFiles(ctx context.Context) error {
	files, err := ws.gw.Files(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.files = files
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadFeatured(ctx context.Context) error {
	featured, err := ws.gw.Featured(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.featured = featured
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadSlider(ctx context.Context) error {
	slider, err := ws.gw.SliderImages(ctx)
	if err != nil {
		return err
	}
	if len(slider) == 0 {
		slider = defaultSlider()
	}
	ws.mu.Lock()
	ws.slider = slider
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadAnnouncements(ctx context.Context) error {
	anns, err := ws.gw.Announcements(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.announcements = anns
	ws.mu.Unlock()
	return nil
}

func (ws *Workspace) reloadStaff(ctx context.Context) error {
	staff, err := ws.gw.Staff(ctx)
	if err != nil {
		return err
	}
	ws.mu.Lock()
	ws.staff = staff
	ws.mu.Unlock()
	return nil
}

// --- Read accessors (copies, callers may not mutate workspace state) ---

func (ws *Workspace) Categories() []models.Category {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.Category(nil), ws.categories...)
}

// FoldersIn returns the folders belonging to one category, in store order.
func (ws *Workspace) FoldersIn(categoryID string) []models.Folder {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	var out []models.Folder
	for _, f := range ws.folders {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	return out
}

// FilesIn returns the files belonging to one folder, in store order.
func (ws *Workspace) FilesIn(folderID string) []models.File {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	var out []models.File
	for _, f := range ws.files {
		if f.FolderID == folderID {
			out = append(out, f)
		}
	}
	return out
}

func (ws *Workspace) Files() []models.File {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.File(nil), ws.files...)
}

func (ws *Workspace) Featured() []models.FeaturedItem {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.FeaturedItem(nil), ws.featured...)
}

func (ws *Workspace) SliderImages() []models.SliderImage {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.SliderImage(nil), ws.slider...)
}

func (ws *Workspace) Announcements() []models.Announcement {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.Announcement(nil), ws.announcements...)
}

func (ws *Workspace) StaffList() []models.StaffMember {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return append([]models.StaffMember(nil), ws.staff...)
}

func (ws *Workspace) Settings() models.SiteSettings {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.settings
}

// --- Dashboard aggregates ---

// TotalLikes sums like counts across files and featured items.
func (ws *Workspace) TotalLikes() int {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	total := 0
	for _, f := range ws.files {
		total += f.Likes
	}
	for _, i := range ws.featured {
		total += i.Likes
	}
	return total
}

// TopLiked returns up to n files ordered by like count, most liked first.
func (ws *Workspace) TopLiked(n int) []models.File {
	files := ws.Files()
	sort.SliceStable(files, func(i, j int) bool { return files[i].Likes > files[j].Likes })
	if len(files) > n {
		files = files[:n]
	}
	return files
}

// --- Locked lookup helpers for mutations (callers hold ws.mu) ---

func (ws *Workspace) categoryIndex(id string) int {
	for i, c := range ws.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (ws *Workspace) folderIndex(id string) int {
	for i, f := range ws.folders {
		if f.ID == id {
			return i
		}
	}
	return -1
}

func (ws *Workspace) fileIndex(id string) int {
	for i, f := range ws.files {
		if f.ID == id {
			return i
		}
	}
	return -1
}
