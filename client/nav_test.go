// mediahub/client/nav_test.go
package client

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"mediahub/models"
)

// navWorkspace builds a workspace with a fixed in-memory tree; cursors only
// read, so no server is needed.
func navWorkspace() *Workspace {
	ws := &Workspace{
		gw:     NewGateway("http://unused"),
		logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		categories: []models.Category{
			{ID: "cat_a", Name: "A"},
			{ID: "cat_b", Name: "B"},
		},
		folders: []models.Folder{
			{ID: "fol_a1", CategoryID: "cat_a", Name: "A1"},
			{ID: "fol_b1", CategoryID: "cat_b", Name: "B1"},
		},
		files: []models.File{
			{ID: "file_1", FolderID: "fol_a1", CategoryID: "cat_a", Name: "one"},
			{ID: "file_2", FolderID: "fol_a1", CategoryID: "cat_a", Name: "two"},
		},
	}
	ws.Admin = newCursor(ws)
	ws.Public = newCursor(ws)
	return ws
}

func TestCursorDescent(t *testing.T) {
	ws := navWorkspace()
	c := ws.Public

	if state, _, _ := c.Location(); state != CursorCategories {
		t.Fatalf("Initial state should be Categories, got %v", state)
	}

	if err := c.EnterCategory("cat_a"); err != nil {
		t.Fatalf("EnterCategory failed: %v", err)
	}
	if got := len(c.Folders()); got != 1 {
		t.Errorf("Expected 1 folder in cat_a, got %d", got)
	}

	if err := c.EnterFolder("fol_a1"); err != nil {
		t.Fatalf("EnterFolder failed: %v", err)
	}
	state, categoryID, folderID := c.Location()
	if state != CursorFiles || categoryID != "cat_a" || folderID != "fol_a1" {
		t.Errorf("Unexpected location: %v %q %q", state, categoryID, folderID)
	}
	if got := len(c.Files()); got != 2 {
		t.Errorf("Expected 2 files in fol_a1, got %d", got)
	}
}

func TestCursorResetFromAnywhere(t *testing.T) {
	ws := navWorkspace()
	c := ws.Admin

	if err := c.EnterCategory("cat_a"); err != nil {
		t.Fatalf("EnterCategory failed: %v", err)
	}
	if err := c.EnterFolder("fol_a1"); err != nil {
		t.Fatalf("EnterFolder failed: %v", err)
	}
	c.Reset()
	state, categoryID, folderID := c.Location()
	if state != CursorCategories || categoryID != "" || folderID != "" {
		t.Errorf("Reset should clear everything, got %v %q %q", state, categoryID, folderID)
	}
}

func TestCursorDeletedParentFallsBack(t *testing.T) {
	ws := navWorkspace()
	c := ws.Public

	var nf *NotFoundError
	if err := c.EnterCategory("cat_gone"); !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if state, _, _ := c.Location(); state != CursorCategories {
		t.Error("Entering a missing category should reset the cursor")
	}

	if err := c.EnterCategory("cat_a"); err != nil {
		t.Fatalf("EnterCategory failed: %v", err)
	}
	if err := c.EnterFolder("fol_gone"); !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if state, _, _ := c.Location(); state != CursorCategories {
		t.Error("Entering a missing folder should reset the cursor")
	}
}

func TestCursorWrongCategoryIsNoOp(t *testing.T) {
	ws := navWorkspace()
	c := ws.Public

	if err := c.EnterCategory("cat_a"); err != nil {
		t.Fatalf("EnterCategory failed: %v", err)
	}
	if err := c.EnterFolder("fol_b1"); !errors.Is(err, ErrOutsideCategory) {
		t.Fatalf("Expected ErrOutsideCategory, got %v", err)
	}
	state, categoryID, folderID := c.Location()
	if state != CursorFolders || categoryID != "cat_a" || folderID != "" {
		t.Errorf("Wrong-category entry must not move the cursor, got %v %q %q", state, categoryID, folderID)
	}
}

func TestCursorsAreIndependent(t *testing.T) {
	ws := navWorkspace()

	if err := ws.Admin.EnterCategory("cat_a"); err != nil {
		t.Fatalf("EnterCategory failed: %v", err)
	}
	if state, _, _ := ws.Public.Location(); state != CursorCategories {
		t.Error("Admin navigation must not move the public cursor")
	}
}
