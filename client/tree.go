// mediahub/client/tree.go
//
// Mutations on the category/folder/file hierarchy.
package client

import (
	"context"
	"errors"
	"strings"
	"time"

	"mediahub/models"
	"mediahub/utils"
)

// CreateCategory appends a category optimistically and persists it.
func (ws *Workspace) CreateCategory(ctx context.Context, name, icon string) (models.Category, error) {
	c := models.Category{ID: utils.NewID("cat"), Name: name, Icon: icon}
	err := ws.run(ctx, mutation{
		op:       OpCreateCategory,
		validate: c.Validate,
		apply: func() {
			ws.categories = append(ws.categories, c)
		},
		revert: func() {
			if i := ws.categoryIndex(c.ID); i >= 0 {
				ws.categories = append(ws.categories[:i], ws.categories[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateCategory(ctx, c)
			if err != nil {
				return err
			}
			if ok {
				ws.replaceCategory(c.ID, created)
				c = created
			}
			return nil
		},
		reload: ws.reloadCategories,
	})
	return c, err
}

// CreateFolder appends a folder under an existing category.
func (ws *Workspace) CreateFolder(ctx context.Context, categoryID, name string) (models.Folder, error) {
	f := models.Folder{ID: utils.NewID("fol"), CategoryID: categoryID, Name: name}
	err := ws.run(ctx, mutation{
		op: OpCreateFolder,
		validate: func() error {
			if !ws.categoryExists(categoryID) {
				return &NotFoundError{Kind: "category", ID: categoryID}
			}
			return f.Validate()
		},
		apply: func() {
			ws.folders = append(ws.folders, f)
		},
		revert: func() {
			if i := ws.folderIndex(f.ID); i >= 0 {
				ws.folders = append(ws.folders[:i], ws.folders[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateFolder(ctx, f)
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFolder(f.ID, created)
				f = created
			}
			return nil
		},
		reload: ws.reloadFolders,
	})
	return f, err
}

// FileUpload is the caller-supplied part of a new file. URL may be a plain
// reference or an inline data URL the store ingests into blob storage.
type FileUpload struct {
	Name       string
	URL        string
	Thumbnail  string
	Tags       string
	UploadedBy string
}

// UploadFile places one file under an existing folder. The media type is
// detected once here and travels with the file from then on.
func (ws *Workspace) UploadFile(ctx context.Context, folderID, categoryID string, up FileUpload) (models.File, error) {
	f := models.File{
		ID:         utils.NewID("file"),
		FolderID:   folderID,
		CategoryID: categoryID,
		Name:       up.Name,
		MediaType:  models.DetectMediaType(dataURLContentType(up.URL), up.Name),
		URL:        up.URL,
		Thumbnail:  up.Thumbnail,
		Tags:       up.Tags,
		UploadedBy: up.UploadedBy,
		UploadDate: time.Now().UTC(),
	}
	err := ws.run(ctx, mutation{
		op: OpUploadFile,
		validate: func() error {
			folder, ok := ws.lookupFolder(folderID)
			if !ok {
				return &NotFoundError{Kind: "folder", ID: folderID}
			}
			if folder.CategoryID != categoryID {
				return &ValidationError{Reason: "folder belongs to a different category"}
			}
			return f.Validate()
		},
		apply: func() {
			ws.files = append(ws.files, f)
		},
		revert: func() {
			if i := ws.fileIndex(f.ID); i >= 0 {
				ws.files = append(ws.files[:i], ws.files[i+1:]...)
			}
		},
		call: func(ctx context.Context) error {
			created, ok, err := ws.gw.CreateFile(ctx, f)
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFile(f.ID, created)
				f = created
			}
			return nil
		},
		reload: ws.reloadFiles,
	})
	return f, err
}

// UploadFiles uploads a batch, continuing past individual failures. It
// returns the files that made it alongside the joined errors of those that
// did not.
func (ws *Workspace) UploadFiles(ctx context.Context, folderID, categoryID string, ups []FileUpload) ([]models.File, error) {
	var uploaded []models.File
	var errs []error
	for _, up := range ups {
		f, err := ws.UploadFile(ctx, folderID, categoryID, up)
		if err != nil {
			ws.logger.Warn("File upload failed", "name", up.Name, "error", err)
			errs = append(errs, err)
			continue
		}
		uploaded = append(uploaded, f)
	}
	return uploaded, errors.Join(errs...)
}

// RenameItem renames a category, folder, or file in place.
func (ws *Workspace) RenameItem(ctx context.Context, kind, id, newName string) error {
	switch kind {
	case "category":
		return ws.renameCategory(ctx, id, newName)
	case "folder":
		return ws.renameFolder(ctx, id, newName)
	case "file":
		return ws.renameFile(ctx, id, newName)
	default:
		return &ValidationError{Reason: "unknown item kind " + kind}
	}
}

func (ws *Workspace) renameCategory(ctx context.Context, id, newName string) error {
	var oldName string
	return ws.run(ctx, mutation{
		op: OpRenameItem,
		validate: func() error {
			if strings.TrimSpace(newName) == "" {
				return &ValidationError{Reason: "name must not be empty"}
			}
			if !ws.categoryExists(id) {
				return &NotFoundError{Kind: "category", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.categoryIndex(id); i >= 0 {
				oldName = ws.categories[i].Name
				ws.categories[i].Name = newName
			}
		},
		revert: func() {
			if i := ws.categoryIndex(id); i >= 0 {
				ws.categories[i].Name = oldName
			}
		},
		call: func(ctx context.Context) error {
			updated, ok, err := ws.gw.UpdateCategory(ctx, id, models.CategoryUpdate{Name: &newName})
			if err != nil {
				return err
			}
			if ok {
				ws.replaceCategory(id, updated)
			}
			return nil
		},
		reload: ws.reloadCategories,
	})
}

func (ws *Workspace) renameFolder(ctx context.Context, id, newName string) error {
	var oldName string
	return ws.run(ctx, mutation{
		op: OpRenameItem,
		validate: func() error {
			if strings.TrimSpace(newName) == "" {
				return &ValidationError{Reason: "name must not be empty"}
			}
			if _, ok := ws.lookupFolder(id); !ok {
				return &NotFoundError{Kind: "folder", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.folderIndex(id); i >= 0 {
				oldName = ws.folders[i].Name
				ws.folders[i].Name = newName
			}
		},
		revert: func() {
			if i := ws.folderIndex(id); i >= 0 {
				ws.folders[i].Name = oldName
			}
		},
		call: func(ctx context.Context) error {
			updated, ok, err := ws.gw.UpdateFolder(ctx, id, models.FolderUpdate{Name: &newName})
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFolder(id, updated)
			}
			return nil
		},
		reload: ws.reloadFolders,
	})
}

func (ws *Workspace) renameFile(ctx context.Context, id, newName string) error {
	var oldName string
	return ws.run(ctx, mutation{
		op: OpRenameItem,
		validate: func() error {
			if strings.TrimSpace(newName) == "" {
				return &ValidationError{Reason: "name must not be empty"}
			}
			if _, ok := ws.lookupFile(id); !ok {
				return &NotFoundError{Kind: "file", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.fileIndex(id); i >= 0 {
				oldName = ws.files[i].Name
				ws.files[i].Name = newName
			}
		},
		revert: func() {
			if i := ws.fileIndex(id); i >= 0 {
				ws.files[i].Name = oldName
			}
		},
		call: func(ctx context.Context) error {
			updated, ok, err := ws.gw.UpdateFile(ctx, id, models.FileUpdate{Name: &newName})
			if err != nil {
				return err
			}
			if ok {
				ws.replaceFile(id, updated)
			}
			return nil
		},
		reload: ws.reloadFiles,
	})
}

// DeleteFile removes a single file.
func (ws *Workspace) DeleteFile(ctx context.Context, id string) error {
	var removed models.File
	var at int
	return ws.run(ctx, mutation{
		op: OpDeleteFile,
		validate: func() error {
			if _, ok := ws.lookupFile(id); !ok {
				return &NotFoundError{Kind: "file", ID: id}
			}
			return nil
		},
		apply: func() {
			if i := ws.fileIndex(id); i >= 0 {
				at = i
				removed = ws.files[i]
				ws.files = append(ws.files[:i], ws.files[i+1:]...)
			}
		},
		revert: func() {
			ws.files = append(ws.files[:at], append([]models.File{removed}, ws.files[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteFile(ctx, id)
		},
		reload: ws.reloadFiles,
	})
}

// DeleteFolder removes a folder and its files. Child file deletes are
// best-effort: a failing child does not stop the cascade. A failure deleting
// the folder itself keeps the folder locally and surfaces the error.
func (ws *Workspace) DeleteFolder(ctx context.Context, id string) error {
	if !Allows(OpDeleteFolder, ws.gw.Level()) {
		return permissionDenied(OpDeleteFolder)
	}
	folder, ok := ws.lookupFolder(id)
	if !ok {
		return &NotFoundError{Kind: "folder", ID: id}
	}

	children := ws.FilesIn(id)
	if len(children) > 0 {
		if ws.confirm == nil || !ws.confirm("folder", folder.Name, len(children)) {
			return ErrConfirmationDeclined
		}
	}
	ws.removeDescendantFiles(ctx, children)

	var at int
	return ws.run(ctx, mutation{
		op: OpDeleteFolder,
		apply: func() {
			if i := ws.folderIndex(id); i >= 0 {
				at = i
				ws.folders = append(ws.folders[:i], ws.folders[i+1:]...)
			}
		},
		revert: func() {
			ws.folders = append(ws.folders[:at], append([]models.Folder{folder}, ws.folders[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteFolder(ctx, id)
		},
		reload: ws.reloadFolders,
	})
}

// DeleteCategory removes a category and everything under it. Descendant
// files are remote-deleted best-effort; descendant folder rows fall with the
// category on the store side, so they are only removed locally. A failure at
// the category's own remote delete keeps the category locally.
func (ws *Workspace) DeleteCategory(ctx context.Context, id string) error {
	if !Allows(OpDeleteCategory, ws.gw.Level()) {
		return permissionDenied(OpDeleteCategory)
	}
	ws.mu.RLock()
	var category models.Category
	found := false
	if i := ws.categoryIndex(id); i >= 0 {
		category = ws.categories[i]
		found = true
	}
	ws.mu.RUnlock()
	if !found {
		return &NotFoundError{Kind: "category", ID: id}
	}

	folders := ws.FoldersIn(id)
	if len(folders) > 0 {
		if ws.confirm == nil || !ws.confirm("category", category.Name, len(folders)) {
			return ErrConfirmationDeclined
		}
	}

	for _, folder := range folders {
		ws.removeDescendantFiles(ctx, ws.FilesIn(folder.ID))
	}
	ws.mu.Lock()
	for _, folder := range folders {
		if i := ws.folderIndex(folder.ID); i >= 0 {
			ws.folders = append(ws.folders[:i], ws.folders[i+1:]...)
		}
	}
	ws.mu.Unlock()

	var at int
	return ws.run(ctx, mutation{
		op: OpDeleteCategory,
		apply: func() {
			if i := ws.categoryIndex(id); i >= 0 {
				at = i
				ws.categories = append(ws.categories[:i], ws.categories[i+1:]...)
			}
		},
		revert: func() {
			ws.categories = append(ws.categories[:at], append([]models.Category{category}, ws.categories[at:]...)...)
		},
		call: func(ctx context.Context) error {
			return ws.gw.DeleteCategory(ctx, id)
		},
		reload: func(ctx context.Context) error {
			return errors.Join(ws.reloadCategories(ctx), ws.reloadFolders(ctx), ws.reloadFiles(ctx))
		},
	})
}

// removeDescendantFiles remote-deletes each file best-effort and removes all
// of them locally, failures included.
func (ws *Workspace) removeDescendantFiles(ctx context.Context, files []models.File) {
	for _, f := range files {
		if err := ws.gw.DeleteFile(ctx, f.ID); err != nil {
			ws.logger.Warn("Cascade file delete failed, continuing", "file_id", f.ID, "error", err)
		}
	}
	ws.mu.Lock()
	for _, f := range files {
		if i := ws.fileIndex(f.ID); i >= 0 {
			ws.files = append(ws.files[:i], ws.files[i+1:]...)
		}
	}
	ws.mu.Unlock()
}

// --- Small lookup/replace helpers ---

func (ws *Workspace) categoryExists(id string) bool {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.categoryIndex(id) >= 0
}

func (ws *Workspace) lookupFolder(id string) (models.Folder, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if i := ws.folderIndex(id); i >= 0 {
		return ws.folders[i], true
	}
	return models.Folder{}, false
}

func (ws *Workspace) lookupFile(id string) (models.File, bool) {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	if i := ws.fileIndex(id); i >= 0 {
		return ws.files[i], true
	}
	return models.File{}, false
}

func (ws *Workspace) replaceCategory(id string, c models.Category) {
	ws.mu.Lock()
	if i := ws.categoryIndex(id); i >= 0 {
		ws.categories[i] = c
	}
	ws.mu.Unlock()
}

func (ws *Workspace) replaceFolder(id string, f models.Folder) {
	ws.mu.Lock()
	if i := ws.folderIndex(id); i >= 0 {
		ws.folders[i] = f
	}
	ws.mu.Unlock()
}

func (ws *Workspace) replaceFile(id string, f models.File) {
	ws.mu.Lock()
	if i := ws.fileIndex(id); i >= 0 {
		ws.files[i] = f
	}
	ws.mu.Unlock()
}

// dataURLContentType extracts the MIME type from a data URL without decoding
// the payload. Plain URLs yield an empty string.
func dataURLContentType(s string) string {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return ""
	}
	meta, _, _ := strings.Cut(rest, ",")
	ct, _ := strings.CutSuffix(meta, ";base64")
	return ct
}
