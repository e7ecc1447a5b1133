// mediahub/client/gateway.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"mediahub/config"
	"mediahub/models"
)

// Gateway is the single doorway to the remote store. It attaches the role
// level header, encodes and decodes JSON bodies, and converts non-2xx
// responses into typed failures.
type Gateway struct {
	baseURL string
	client  *http.Client

	mu    sync.RWMutex
	token string
	level int
}

func NewGateway(baseURL string) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAuth installs the credential attached to subsequent requests.
func (g *Gateway) SetAuth(token string, level int) {
	g.mu.Lock()
	g.token = token
	g.level = level
	g.mu.Unlock()
}

// ClearAuth drops the credential, returning the gateway to public level.
func (g *Gateway) ClearAuth() {
	g.SetAuth("", 0)
}

// Level returns the current role level, 0 when unauthenticated.
func (g *Gateway) Level() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.level
}

// call issues one HTTP request per logical operation. A non-2xx response is
// returned as a PermissionError, NotFoundError, or RemoteError carrying the
// server-supplied message.
func (g *Gateway) call(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if level := g.Level(); level > 0 {
		req.Header.Set(config.RoleLevelHeader, strconv.Itoa(level))
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &RemoteError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := "remote store error"
		var failure struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&failure); err == nil && failure.Error != "" {
			message = failure.Error
		}
		switch resp.StatusCode {
		case http.StatusForbidden:
			return &PermissionError{Message: message}
		case http.StatusNotFound:
			return &NotFoundError{Kind: message}
		default:
			return &RemoteError{Status: resp.StatusCode, Message: message}
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

type envelope[T any] struct {
	Data []T `json:"data"`
}

func list[T any](ctx context.Context, g *Gateway, path string) ([]T, error) {
	var env envelope[T]
	if err := g.call(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// create posts a body and returns the authoritative row from the {data:[row]}
// envelope. An empty envelope falls back to the zero value with no error; the
// caller keeps its optimistic entry in that case.
func create[T any](ctx context.Context, g *Gateway, path string, body interface{}) (T, bool, error) {
	var env envelope[T]
	var zero T
	if err := g.call(ctx, http.MethodPost, path, body, &env); err != nil {
		return zero, false, err
	}
	if len(env.Data) == 0 {
		return zero, false, nil
	}
	return env.Data[0], true, nil
}

func update[T any](ctx context.Context, g *Gateway, path, id string, body interface{}) (T, bool, error) {
	var env envelope[T]
	var zero T
	if err := g.call(ctx, http.MethodPut, path+"?id="+url.QueryEscape(id), body, &env); err != nil {
		return zero, false, err
	}
	if len(env.Data) == 0 {
		return zero, false, nil
	}
	return env.Data[0], true, nil
}

func (g *Gateway) remove(ctx context.Context, path, id string) error {
	return g.call(ctx, http.MethodDelete, path+"?id="+url.QueryEscape(id), nil, nil)
}

// --- Login ---

// Login exchanges a password for an identity. The password alone determines
// the staff member and level.
func (g *Gateway) Login(ctx context.Context, password string) (models.User, error) {
	var resp struct {
		Success bool        `json:"success"`
		User    models.User `json:"user"`
		Message string      `json:"message"`
	}
	err := g.call(ctx, http.MethodPost, "/api/login", map[string]string{"password": password}, &resp)
	if err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// --- Content tree resources ---

func (g *Gateway) Categories(ctx context.Context) ([]models.Category, error) {
	return list[models.Category](ctx, g, "/api/categories")
}

func (g *Gateway) CreateCategory(ctx context.Context, c models.Category) (models.Category, bool, error) {
	return create[models.Category](ctx, g, "/api/categories", c)
}

func (g *Gateway) UpdateCategory(ctx context.Context, id string, u models.CategoryUpdate) (models.Category, bool, error) {
	return update[models.Category](ctx, g, "/api/categories", id, u)
}

func (g *Gateway) DeleteCategory(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/categories", id)
}

func (g *Gateway) Folders(ctx context.Context) ([]models.Folder, error) {
	return list[models.Folder](ctx, g, "/api/folders")
}

func (g *Gateway) CreateFolder(ctx context.Context, f models.Folder) (models.Folder, bool, error) {
	return create[models.Folder](ctx, g, "/api/folders", f)
}

func (g *Gateway) UpdateFolder(ctx context.Context, id string, u models.FolderUpdate) (models.Folder, bool, error) {
	return update[models.Folder](ctx, g, "/api/folders", id, u)
}

func (g *Gateway) DeleteFolder(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/folders", id)
}

func (g *Gateway) Files(ctx context.Context) ([]models.File, error) {
	return list[models.File](ctx, g, "/api/files")
}

func (g *Gateway) CreateFile(ctx context.Context, f models.File) (models.File, bool, error) {
	return create[models.File](ctx, g, "/api/files", f)
}

func (g *Gateway) UpdateFile(ctx context.Context, id string, u models.FileUpdate) (models.File, bool, error) {
	return update[models.File](ctx, g, "/api/files", id, u)
}

func (g *Gateway) DeleteFile(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/files", id)
}

// --- Curated content resources ---

func (g *Gateway) Featured(ctx context.Context) ([]models.FeaturedItem, error) {
	return list[models.FeaturedItem](ctx, g, "/api/featured-media")
}

func (g *Gateway) CreateFeatured(ctx context.Context, i models.FeaturedItem) (models.FeaturedItem, bool, error) {
	return create[models.FeaturedItem](ctx, g, "/api/featured-media", i)
}

func (g *Gateway) UpdateFeatured(ctx context.Context, id string, u models.FeaturedUpdate) (models.FeaturedItem, bool, error) {
	return update[models.FeaturedItem](ctx, g, "/api/featured-media", id, u)
}

func (g *Gateway) DeleteFeatured(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/featured-media", id)
}

func (g *Gateway) SliderImages(ctx context.Context) ([]models.SliderImage, error) {
	return list[models.SliderImage](ctx, g, "/api/slider-images")
}

func (g *Gateway) CreateSliderImage(ctx context.Context, url string) (models.SliderImage, bool, error) {
	return create[models.SliderImage](ctx, g, "/api/slider-images", map[string]string{"url": url})
}

func (g *Gateway) DeleteSliderImage(ctx context.Context, id int64) error {
	return g.remove(ctx, "/api/slider-images", strconv.FormatInt(id, 10))
}

func (g *Gateway) Announcements(ctx context.Context) ([]models.Announcement, error) {
	return list[models.Announcement](ctx, g, "/api/announcements")
}

func (g *Gateway) CreateAnnouncement(ctx context.Context, a models.Announcement) (models.Announcement, bool, error) {
	return create[models.Announcement](ctx, g, "/api/announcements", a)
}

func (g *Gateway) DeleteAnnouncement(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/announcements", id)
}

// --- Staff and settings ---

func (g *Gateway) Staff(ctx context.Context) ([]models.StaffMember, error) {
	return list[models.StaffMember](ctx, g, "/api/staff")
}

func (g *Gateway) CreateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, bool, error) {
	return create[models.StaffMember](ctx, g, "/api/staff", m)
}

func (g *Gateway) DeleteStaff(ctx context.Context, id string) error {
	return g.remove(ctx, "/api/staff", id)
}

func (g *Gateway) Settings(ctx context.Context) (models.SiteSettings, error) {
	var env struct {
		Data models.SiteSettings `json:"data"`
	}
	if err := g.call(ctx, http.MethodGet, "/api/site-settings", nil, &env); err != nil {
		return models.SiteSettings{}, err
	}
	return env.Data, nil
}

func (g *Gateway) PutSettings(ctx context.Context, s models.SiteSettings) (models.SiteSettings, bool, error) {
	var env envelope[models.SiteSettings]
	if err := g.call(ctx, http.MethodPut, "/api/site-settings", s, &env); err != nil {
		return models.SiteSettings{}, false, err
	}
	if len(env.Data) == 0 {
		return models.SiteSettings{}, false, nil
	}
	return env.Data[0], true, nil
}
