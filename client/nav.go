// mediahub/client/nav.go
package client

import (
	"errors"
	"sync"

	"mediahub/models"
)

// ErrOutsideCategory is returned when entering a folder that exists but does
// not belong to the current category. The cursor does not move.
var ErrOutsideCategory = errors.New("folder is outside the current category")

// CursorState is the hierarchy level a cursor is showing.
type CursorState int

const (
	CursorCategories CursorState = iota
	CursorFolders
	CursorFiles
)

// Cursor tracks which level of the content tree a view is showing. The admin
// dashboard and the public gallery each hold their own instance. A cursor
// only reads from the workspace, never mutates it.
type Cursor struct {
	ws *Workspace

	mu         sync.Mutex
	state      CursorState
	categoryID string
	folderID   string
}

func newCursor(ws *Workspace) *Cursor {
	return &Cursor{ws: ws}
}

// Location returns the current state and parent ids. Ids are empty for
// levels not yet entered.
func (c *Cursor) Location() (CursorState, string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.categoryID, c.folderID
}

// Reset returns the cursor to the category level from anywhere.
func (c *Cursor) Reset() {
	c.mu.Lock()
	c.state = CursorCategories
	c.categoryID = ""
	c.folderID = ""
	c.mu.Unlock()
}

// EnterCategory descends into a category. Entering a category that no longer
// exists resets the cursor and reports the miss.
func (c *Cursor) EnterCategory(id string) error {
	if !c.ws.categoryExists(id) {
		c.Reset()
		return &NotFoundError{Kind: "category", ID: id}
	}
	c.mu.Lock()
	c.state = CursorFolders
	c.categoryID = id
	c.folderID = ""
	c.mu.Unlock()
	return nil
}

// EnterFolder descends into a folder of the current category. A deleted
// folder resets the cursor; a folder from another category is an error with
// no state change.
func (c *Cursor) EnterFolder(id string) error {
	folder, ok := c.ws.lookupFolder(id)
	if !ok {
		c.Reset()
		return &NotFoundError{Kind: "folder", ID: id}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if folder.CategoryID != c.categoryID {
		return ErrOutsideCategory
	}
	c.state = CursorFiles
	c.folderID = id
	return nil
}

// Folders lists the folders of the entered category.
func (c *Cursor) Folders() []models.Folder {
	_, categoryID, _ := c.Location()
	if categoryID == "" {
		return nil
	}
	return c.ws.FoldersIn(categoryID)
}

// Files lists the files of the entered folder.
func (c *Cursor) Files() []models.File {
	_, _, folderID := c.Location()
	if folderID == "" {
		return nil
	}
	return c.ws.FilesIn(folderID)
}
