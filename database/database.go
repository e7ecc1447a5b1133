// mediahub/database/database.go
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"mediahub/config"
	"mediahub/models"
	"mediahub/utils"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrProtectedStaff is returned when deleting the seeded owner record.
	ErrProtectedStaff = errors.New("staff member is protected")
)

// StoreService is the central struct for all database operations.
type StoreService struct {
	DB     *sql.DB
	logger *slog.Logger

	settingsMu    sync.RWMutex
	settingsCache *models.SiteSettings
}

// InitDB connects to the database, runs migrations, and seeds default data.
// adminPassword becomes the credential of the protected level-3 staff record
// on first run.
func InitDB(dataSourceName, adminPassword string, logger *slog.Logger) (*StoreService, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to execute base schema: %w", err)
	}
	if err := runMigrations(db, logger); err != nil {
		return nil, fmt.Errorf("database migration failed: %w", err)
	}

	ds := &StoreService{DB: db, logger: logger}
	if err := ds.seed(adminPassword); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Info("Database initialized")
	return ds, nil
}

// seed inserts the default categories, the settings singleton, and the
// protected owner record into an empty database.
func (ds *StoreService) seed(adminPassword string) error {
	var categoryCount int
	if err := ds.DB.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categoryCount); err == nil && categoryCount == 0 {
		for _, c := range config.DefaultCategories {
			if _, err := ds.DB.Exec("INSERT INTO categories (id, name, icon, created_at) VALUES (?, ?, ?, ?)",
				c.ID, c.Name, c.Icon, time.Now().UTC()); err != nil {
				return fmt.Errorf("failed to seed category %q: %w", c.Name, err)
			}
		}
	}

	var settingsCount int
	if err := ds.DB.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&settingsCount); err == nil && settingsCount == 0 {
		_, err := ds.DB.Exec(`INSERT INTO site_settings (id, brand_name, hero_title, hero_subtitle, footer_description, footer_copyright)
			VALUES (1, 'Media Hub', 'MEDIA HUB', 'Browse photos, videos, audio and documents.', 'A community media library.', 'All rights reserved.')`)
		if err != nil {
			return fmt.Errorf("failed to seed site settings: %w", err)
		}
	}

	var ownerCount int
	if err := ds.DB.QueryRow("SELECT COUNT(*) FROM staff WHERE protected = 1").Scan(&ownerCount); err == nil && ownerCount == 0 {
		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return err
		}
		_, err = ds.DB.Exec("INSERT INTO staff (id, name, email, password, level, protected, added_date) VALUES (?, 'Admin', 'admin@mediahub.local', ?, ?, 1, ?)",
			utils.NewID("staff"), hash, config.LevelOwner, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to seed owner record: %w", err)
		}
	}
	return nil
}

// runMigrations applies all un-applied migrations.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	var latestVersion uint
	err := db.QueryRow("SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1").Scan(&latestVersion)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("could not get db version: %w", err)
	}

	for _, m := range allMigrations {
		if m.Version <= latestVersion {
			continue
		}
		logger.Info("Applying migration", "version", m.Version)
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(m.Query); err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				logger.Error("Failed to rollback migration", "version", m.Version, "error", rerr)
			}
			return fmt.Errorf("failed to apply migration v%d: %w", m.Version, err)
		}
		if _, err := tx.Exec("INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)", m.Version, time.Now().UTC()); err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				logger.Error("Failed to rollback migration record", "version", m.Version, "error", rerr)
			}
			return fmt.Errorf("failed to record migration v%d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration v%d: %w", m.Version, err)
		}
	}
	return nil
}

// --- Categories ---

func (ds *StoreService) ListCategories() ([]models.Category, error) {
	rows, err := ds.DB.Query("SELECT id, name, icon FROM categories ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListCategories")

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			ds.logger.Error("Failed to scan category row", "error", err)
			continue
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (ds *StoreService) GetCategory(id string) (models.Category, error) {
	var c models.Category
	err := ds.DB.QueryRow("SELECT id, name, icon FROM categories WHERE id = ?", id).Scan(&c.ID, &c.Name, &c.Icon)
	if err == sql.ErrNoRows {
		return c, ErrNotFound
	}
	return c, err
}

func (ds *StoreService) CreateCategory(c models.Category) error {
	_, err := ds.DB.Exec("INSERT INTO categories (id, name, icon, created_at) VALUES (?, ?, ?, ?)",
		c.ID, c.Name, c.Icon, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (ds *StoreService) UpdateCategory(id string, u models.CategoryUpdate) (models.Category, error) {
	var set []string
	var args []interface{}
	if u.Name != nil {
		set, args = append(set, "name = ?"), append(args, *u.Name)
	}
	if u.Icon != nil {
		set, args = append(set, "icon = ?"), append(args, *u.Icon)
	}
	if len(set) == 0 {
		return ds.GetCategory(id)
	}
	args = append(args, id)
	res, err := ds.DB.Exec("UPDATE categories SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Category{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Category{}, ErrNotFound
	}
	return ds.GetCategory(id)
}

// DeleteCategory removes a category; folders and files underneath it go with
// it through the schema's FK cascades.
func (ds *StoreService) DeleteCategory(id string) error {
	res, err := ds.DB.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Folders ---

func (ds *StoreService) ListFolders() ([]models.Folder, error) {
	rows, err := ds.DB.Query("SELECT id, category_id, name FROM folders ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListFolders")

	var folders []models.Folder
	for rows.Next() {
		var f models.Folder
		if err := rows.Scan(&f.ID, &f.CategoryID, &f.Name); err != nil {
			ds.logger.Error("Failed to scan folder row", "error", err)
			continue
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (ds *StoreService) GetFolder(id string) (models.Folder, error) {
	var f models.Folder
	err := ds.DB.QueryRow("SELECT id, category_id, name FROM folders WHERE id = ?", id).Scan(&f.ID, &f.CategoryID, &f.Name)
	if err == sql.ErrNoRows {
		return f, ErrNotFound
	}
	return f, err
}

func (ds *StoreService) CreateFolder(f models.Folder) error {
	if _, err := ds.GetCategory(f.CategoryID); err != nil {
		return fmt.Errorf("parent category %q: %w", f.CategoryID, err)
	}
	_, err := ds.DB.Exec("INSERT INTO folders (id, category_id, name, created_at) VALUES (?, ?, ?, ?)",
		f.ID, f.CategoryID, f.Name, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert folder: %w", err)
	}
	return nil
}

func (ds *StoreService) UpdateFolder(id string, u models.FolderUpdate) (models.Folder, error) {
	var set []string
	var args []interface{}
	if u.Name != nil {
		set, args = append(set, "name = ?"), append(args, *u.Name)
	}
	if u.CategoryID != nil {
		set, args = append(set, "category_id = ?"), append(args, *u.CategoryID)
	}
	if len(set) == 0 {
		return ds.GetFolder(id)
	}
	args = append(args, id)
	res, err := ds.DB.Exec("UPDATE folders SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.Folder{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Folder{}, ErrNotFound
	}
	return ds.GetFolder(id)
}

func (ds *StoreService) DeleteFolder(id string) error {
	res, err := ds.DB.Exec("DELETE FROM folders WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Files ---

const fileColumns = "id, folder_id, category_id, name, media_type, url, thumbnail, tags, likes, approved, uploaded_by, upload_date"

func (ds *StoreService) scanFile(row interface{ Scan(...interface{}) error }) (models.File, error) {
	var f models.File
	err := row.Scan(&f.ID, &f.FolderID, &f.CategoryID, &f.Name, &f.MediaType, &f.URL,
		&f.Thumbnail, &f.Tags, &f.Likes, &f.Approved, &f.UploadedBy, &f.UploadDate)
	return f, err
}

func (ds *StoreService) ListFiles() ([]models.File, error) {
	rows, err := ds.DB.Query("SELECT " + fileColumns + " FROM files ORDER BY upload_date ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListFiles")

	var files []models.File
	for rows.Next() {
		f, err := ds.scanFile(rows)
		if err != nil {
			ds.logger.Error("Failed to scan file row", "error", err)
			continue
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (ds *StoreService) GetFile(id string) (models.File, error) {
	f, err := ds.scanFile(ds.DB.QueryRow("SELECT "+fileColumns+" FROM files WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return f, ErrNotFound
	}
	return f, err
}

func (ds *StoreService) CreateFile(f models.File) error {
	if _, err := ds.GetFolder(f.FolderID); err != nil {
		return fmt.Errorf("parent folder %q: %w", f.FolderID, err)
	}
	_, err := ds.DB.Exec("INSERT INTO files ("+fileColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		f.ID, f.FolderID, f.CategoryID, f.Name, f.MediaType, f.URL, f.Thumbnail, f.Tags,
		f.Likes, f.Approved, f.UploadedBy, f.UploadDate)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}
	return nil
}

func (ds *StoreService) UpdateFile(id string, u models.FileUpdate) (models.File, error) {
	var set []string
	var args []interface{}
	if u.Name != nil {
		set, args = append(set, "name = ?"), append(args, *u.Name)
	}
	if u.Thumbnail != nil {
		set, args = append(set, "thumbnail = ?"), append(args, *u.Thumbnail)
	}
	if u.Tags != nil {
		set, args = append(set, "tags = ?"), append(args, *u.Tags)
	}
	if u.Likes != nil {
		set, args = append(set, "likes = ?"), append(args, *u.Likes)
	}
	if u.Approved != nil {
		set, args = append(set, "approved = ?"), append(args, *u.Approved)
	}
	if u.FolderID != nil {
		set, args = append(set, "folder_id = ?"), append(args, *u.FolderID)
	}
	if len(set) == 0 {
		return ds.GetFile(id)
	}
	args = append(args, id)
	res, err := ds.DB.Exec("UPDATE files SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.File{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.File{}, ErrNotFound
	}
	return ds.GetFile(id)
}

// DeleteFile removes the row and reports the stored blob references so the
// caller can clean them up.
func (ds *StoreService) DeleteFile(id string) (url, thumbnail string, err error) {
	err = ds.DB.QueryRow("SELECT url, thumbnail FROM files WHERE id = ?", id).Scan(&url, &thumbnail)
	if err == sql.ErrNoRows {
		return "", "", ErrNotFound
	}
	if err != nil {
		return "", "", err
	}
	_, err = ds.DB.Exec("DELETE FROM files WHERE id = ?", id)
	return url, thumbnail, err
}

// --- Featured media ---

func (ds *StoreService) ListFeatured() ([]models.FeaturedItem, error) {
	rows, err := ds.DB.Query("SELECT id, title, description, url, tags, likes, upload_date FROM featured_media ORDER BY upload_date ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListFeatured")

	var items []models.FeaturedItem
	for rows.Next() {
		var i models.FeaturedItem
		if err := rows.Scan(&i.ID, &i.Title, &i.Description, &i.URL, &i.Tags, &i.Likes, &i.UploadDate); err != nil {
			ds.logger.Error("Failed to scan featured row", "error", err)
			continue
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (ds *StoreService) GetFeatured(id string) (models.FeaturedItem, error) {
	var i models.FeaturedItem
	err := ds.DB.QueryRow("SELECT id, title, description, url, tags, likes, upload_date FROM featured_media WHERE id = ?", id).
		Scan(&i.ID, &i.Title, &i.Description, &i.URL, &i.Tags, &i.Likes, &i.UploadDate)
	if err == sql.ErrNoRows {
		return i, ErrNotFound
	}
	return i, err
}

func (ds *StoreService) CreateFeatured(i models.FeaturedItem) error {
	_, err := ds.DB.Exec("INSERT INTO featured_media (id, title, description, url, tags, likes, upload_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
		i.ID, i.Title, i.Description, i.URL, i.Tags, i.Likes, i.UploadDate)
	if err != nil {
		return fmt.Errorf("failed to insert featured item: %w", err)
	}
	return nil
}

func (ds *StoreService) UpdateFeatured(id string, u models.FeaturedUpdate) (models.FeaturedItem, error) {
	var set []string
	var args []interface{}
	if u.Title != nil {
		set, args = append(set, "title = ?"), append(args, *u.Title)
	}
	if u.Description != nil {
		set, args = append(set, "description = ?"), append(args, *u.Description)
	}
	if u.Tags != nil {
		set, args = append(set, "tags = ?"), append(args, *u.Tags)
	}
	if u.Likes != nil {
		set, args = append(set, "likes = ?"), append(args, *u.Likes)
	}
	if u.URL != nil {
		set, args = append(set, "url = ?"), append(args, *u.URL)
	}
	if len(set) == 0 {
		return ds.GetFeatured(id)
	}
	args = append(args, id)
	res, err := ds.DB.Exec("UPDATE featured_media SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return models.FeaturedItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.FeaturedItem{}, ErrNotFound
	}
	return ds.GetFeatured(id)
}

func (ds *StoreService) DeleteFeatured(id string) (url string, err error) {
	err = ds.DB.QueryRow("SELECT url FROM featured_media WHERE id = ?", id).Scan(&url)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	_, err = ds.DB.Exec("DELETE FROM featured_media WHERE id = ?", id)
	return url, err
}

// --- Slider images ---

// ListSliderImages returns newest first.
func (ds *StoreService) ListSliderImages() ([]models.SliderImage, error) {
	rows, err := ds.DB.Query("SELECT id, url FROM slider_images ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListSliderImages")

	var images []models.SliderImage
	for rows.Next() {
		var s models.SliderImage
		if err := rows.Scan(&s.ID, &s.URL); err != nil {
			ds.logger.Error("Failed to scan slider row", "error", err)
			continue
		}
		images = append(images, s)
	}
	return images, rows.Err()
}

// CreateSliderImage inserts a row and returns it with its generated id.
func (ds *StoreService) CreateSliderImage(url string) (models.SliderImage, error) {
	res, err := ds.DB.Exec("INSERT INTO slider_images (url) VALUES (?)", url)
	if err != nil {
		return models.SliderImage{}, fmt.Errorf("failed to insert slider image: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.SliderImage{}, err
	}
	return models.SliderImage{ID: id, URL: url}, nil
}

func (ds *StoreService) UpdateSliderImage(id int64, u models.SliderUpdate) (models.SliderImage, error) {
	if u.URL == nil {
		var s models.SliderImage
		err := ds.DB.QueryRow("SELECT id, url FROM slider_images WHERE id = ?", id).Scan(&s.ID, &s.URL)
		if err == sql.ErrNoRows {
			return s, ErrNotFound
		}
		return s, err
	}
	res, err := ds.DB.Exec("UPDATE slider_images SET url = ? WHERE id = ?", *u.URL, id)
	if err != nil {
		return models.SliderImage{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.SliderImage{}, ErrNotFound
	}
	return models.SliderImage{ID: id, URL: *u.URL}, nil
}

func (ds *StoreService) DeleteSliderImage(id int64) (url string, err error) {
	err = ds.DB.QueryRow("SELECT url FROM slider_images WHERE id = ?", id).Scan(&url)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	_, err = ds.DB.Exec("DELETE FROM slider_images WHERE id = ?", id)
	return url, err
}

// --- Announcements ---

func (ds *StoreService) ListAnnouncements() ([]models.Announcement, error) {
	rows, err := ds.DB.Query("SELECT id, date, title, content, highlight, image FROM announcements ORDER BY created_at ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListAnnouncements")

	var anns []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Date, &a.Title, &a.Content, &a.Highlight, &a.Image); err != nil {
			ds.logger.Error("Failed to scan announcement row", "error", err)
			continue
		}
		anns = append(anns, a)
	}
	return anns, rows.Err()
}

func (ds *StoreService) CreateAnnouncement(a models.Announcement) error {
	_, err := ds.DB.Exec("INSERT INTO announcements (id, date, title, content, highlight, image, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		a.ID, a.Date, a.Title, a.Content, a.Highlight, a.Image, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to insert announcement: %w", err)
	}
	return nil
}

func (ds *StoreService) DeleteAnnouncement(id string) error {
	res, err := ds.DB.Exec("DELETE FROM announcements WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Staff ---

// ListStaff returns staff records with their password hashes blanked.
func (ds *StoreService) ListStaff() ([]models.StaffMember, error) {
	rows, err := ds.DB.Query("SELECT id, name, email, level, protected, added_date FROM staff ORDER BY added_date ASC")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "ListStaff")

	var staff []models.StaffMember
	for rows.Next() {
		var m models.StaffMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Level, &m.Protected, &m.AddedDate); err != nil {
			ds.logger.Error("Failed to scan staff row", "error", err)
			continue
		}
		staff = append(staff, m)
	}
	return staff, rows.Err()
}

// CreateStaff hashes the member's password before storing it.
func (ds *StoreService) CreateStaff(m models.StaffMember) error {
	hash, err := utils.HashPassword(m.Password)
	if err != nil {
		return err
	}
	_, err = ds.DB.Exec("INSERT INTO staff (id, name, email, password, level, protected, added_date) VALUES (?, ?, ?, ?, ?, 0, ?)",
		m.ID, m.Name, m.Email, hash, m.Level, m.AddedDate)
	if err != nil {
		return fmt.Errorf("failed to insert staff member: %w", err)
	}
	return nil
}

func (ds *StoreService) DeleteStaff(id string) error {
	var protected bool
	err := ds.DB.QueryRow("SELECT protected FROM staff WHERE id = ?", id).Scan(&protected)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if protected {
		return ErrProtectedStaff
	}
	_, err = ds.DB.Exec("DELETE FROM staff WHERE id = ?", id)
	return err
}

// FindStaffByPassword walks the staff table comparing the candidate against
// each stored hash. The table is small; the bcrypt comparisons dominate and
// that is deliberate for a login path.
func (ds *StoreService) FindStaffByPassword(password string) (*models.StaffMember, error) {
	rows, err := ds.DB.Query("SELECT id, name, email, password, level, protected, added_date FROM staff")
	if err != nil {
		return nil, err
	}
	defer ds.closeRows(rows, "FindStaffByPassword")

	for rows.Next() {
		var m models.StaffMember
		var hash string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &hash, &m.Level, &m.Protected, &m.AddedDate); err != nil {
			ds.logger.Error("Failed to scan staff row", "error", err)
			continue
		}
		if utils.CheckPassword(hash, password) {
			return &m, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNotFound
}

// --- Site settings ---

const settingsColumns = `id, brand_name, hero_title, hero_subtitle, footer_description,
	footer_address, footer_phone, footer_email, footer_copyright,
	facebook_link, twitter_link, instagram_link, youtube_link`

// GetSettings fetches the singleton settings row, using the instance cache.
func (ds *StoreService) GetSettings() (models.SiteSettings, error) {
	ds.settingsMu.RLock()
	cached := ds.settingsCache
	ds.settingsMu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	var s models.SiteSettings
	err := ds.DB.QueryRow("SELECT "+settingsColumns+" FROM site_settings WHERE id = 1").Scan(
		&s.ID, &s.BrandName, &s.HeroTitle, &s.HeroSubtitle, &s.FooterDescription,
		&s.FooterAddress, &s.FooterPhone, &s.FooterEmail, &s.FooterCopyright,
		&s.FacebookLink, &s.TwitterLink, &s.InstagramLink, &s.YoutubeLink)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	if err != nil {
		return s, err
	}

	ds.settingsMu.Lock()
	ds.settingsCache = &s
	ds.settingsMu.Unlock()
	return s, nil
}

// UpsertSettings replaces the singleton row and returns the stored state.
func (ds *StoreService) UpsertSettings(s models.SiteSettings) (models.SiteSettings, error) {
	s.ID = 1
	_, err := ds.DB.Exec(`INSERT INTO site_settings (`+settingsColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			brand_name=excluded.brand_name, hero_title=excluded.hero_title, hero_subtitle=excluded.hero_subtitle,
			footer_description=excluded.footer_description, footer_address=excluded.footer_address,
			footer_phone=excluded.footer_phone, footer_email=excluded.footer_email,
			footer_copyright=excluded.footer_copyright, facebook_link=excluded.facebook_link,
			twitter_link=excluded.twitter_link, instagram_link=excluded.instagram_link,
			youtube_link=excluded.youtube_link`,
		s.ID, s.BrandName, s.HeroTitle, s.HeroSubtitle, s.FooterDescription,
		s.FooterAddress, s.FooterPhone, s.FooterEmail, s.FooterCopyright,
		s.FacebookLink, s.TwitterLink, s.InstagramLink, s.YoutubeLink)
	if err != nil {
		return models.SiteSettings{}, fmt.Errorf("failed to upsert settings: %w", err)
	}

	ds.settingsMu.Lock()
	ds.settingsCache = &s
	ds.settingsMu.Unlock()
	return s, nil
}

// --- Internal Helpers ---

func (ds *StoreService) closeRows(rows *sql.Rows, where string) {
	if err := rows.Close(); err != nil {
		ds.logger.Error("Failed to close rows", "where", where, "error", err)
	}
}
