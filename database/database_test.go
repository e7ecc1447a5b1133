// mediahub/database/database_test.go
package database

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"mediahub/models"
)

const testAdminPassword = "correct-horse-battery"

func setupTestStore(t *testing.T) *StoreService {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	dbPath := filepath.Join(t.TempDir(), "test.db?_journal_mode=WAL&_foreign_keys=on")
	ds, err := InitDB(dbPath, testAdminPassword, logger)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		if err := ds.DB.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return ds
}

func TestSeedData(t *testing.T) {
	ds := setupTestStore(t)

	t.Run("DefaultCategories", func(t *testing.T) {
		cats, err := ds.ListCategories()
		if err != nil {
			t.Fatalf("ListCategories failed: %v", err)
		}
		if len(cats) != 4 {
			t.Fatalf("Expected 4 seeded categories, got %d", len(cats))
		}
		if cats[0].ID != "cat_photos" || cats[0].Name != "Photos" {
			t.Errorf("Unexpected first category: %+v", cats[0])
		}
	})

	t.Run("SettingsSingleton", func(t *testing.T) {
		s, err := ds.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings failed: %v", err)
		}
		if s.ID != 1 || s.BrandName == "" {
			t.Errorf("Unexpected seeded settings: %+v", s)
		}
	})

	t.Run("ProtectedOwner", func(t *testing.T) {
		staff, err := ds.ListStaff()
		if err != nil {
			t.Fatalf("ListStaff failed: %v", err)
		}
		if len(staff) != 1 {
			t.Fatalf("Expected 1 seeded staff member, got %d", len(staff))
		}
		if !staff[0].Protected || staff[0].Level != 3 {
			t.Errorf("Seeded owner should be protected level 3, got %+v", staff[0])
		}
	})
}

func TestCategoryCRUD(t *testing.T) {
	ds := setupTestStore(t)

	c := models.Category{ID: "cat_test", Name: "Test", Icon: "fas fa-flask"}
	if err := ds.CreateCategory(c); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	newName := "Renamed"
	updated, err := ds.UpdateCategory("cat_test", models.CategoryUpdate{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateCategory failed: %v", err)
	}
	if updated.Name != "Renamed" || updated.Icon != "fas fa-flask" {
		t.Errorf("Partial update got wrong result: %+v", updated)
	}

	if _, err := ds.UpdateCategory("cat_missing", models.CategoryUpdate{Name: &newName}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing category, got %v", err)
	}

	if err := ds.DeleteCategory("cat_test"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if _, err := ds.GetCategory("cat_test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}
}

func TestForeignKeyCascade(t *testing.T) {
	ds := setupTestStore(t)

	if err := ds.CreateFolder(models.Folder{ID: "fol_1", CategoryID: "cat_photos", Name: "Trips"}); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	f := models.File{
		ID: "file_1", FolderID: "fol_1", CategoryID: "cat_photos",
		Name: "beach.jpg", MediaType: models.MediaImage, URL: "https://example.com/beach.jpg",
		UploadDate: time.Now().UTC(),
	}
	if err := ds.CreateFile(f); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	if err := ds.DeleteCategory("cat_photos"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if _, err := ds.GetFolder("fol_1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Folder should cascade with category, got %v", err)
	}
	if _, err := ds.GetFile("file_1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("File should cascade with category, got %v", err)
	}
}

func TestOrphanedChildrenRejected(t *testing.T) {
	ds := setupTestStore(t)

	if err := ds.CreateFolder(models.Folder{ID: "fol_x", CategoryID: "cat_missing", Name: "Orphan"}); err == nil {
		t.Error("CreateFolder should fail for a missing parent category")
	}
	if err := ds.CreateFile(models.File{ID: "file_x", FolderID: "fol_missing", CategoryID: "cat_photos", Name: "n", URL: "u"}); err == nil {
		t.Error("CreateFile should fail for a missing parent folder")
	}
}

func TestSliderImages(t *testing.T) {
	ds := setupTestStore(t)

	first, err := ds.CreateSliderImage("https://example.com/a.jpg")
	if err != nil {
		t.Fatalf("CreateSliderImage failed: %v", err)
	}
	second, err := ds.CreateSliderImage("https://example.com/b.jpg")
	if err != nil {
		t.Fatalf("CreateSliderImage failed: %v", err)
	}
	if first.ID <= 0 || second.ID <= first.ID {
		t.Errorf("Expected increasing generated ids, got %d then %d", first.ID, second.ID)
	}

	images, err := ds.ListSliderImages()
	if err != nil {
		t.Fatalf("ListSliderImages failed: %v", err)
	}
	if len(images) != 2 || images[0].ID != second.ID {
		t.Errorf("Expected newest-first ordering, got %+v", images)
	}
}

func TestStaff(t *testing.T) {
	ds := setupTestStore(t)

	m := models.StaffMember{
		ID: "staff_ed", Name: "Ed", Email: "ed@example.com",
		Password: "editor-pass", Level: 2, AddedDate: time.Now().UTC(),
	}
	if err := ds.CreateStaff(m); err != nil {
		t.Fatalf("CreateStaff failed: %v", err)
	}

	t.Run("FindByPassword", func(t *testing.T) {
		found, err := ds.FindStaffByPassword("editor-pass")
		if err != nil {
			t.Fatalf("FindStaffByPassword failed: %v", err)
		}
		if found.ID != "staff_ed" || found.Level != 2 {
			t.Errorf("Wrong staff member found: %+v", found)
		}

		admin, err := ds.FindStaffByPassword(testAdminPassword)
		if err != nil {
			t.Fatalf("FindStaffByPassword for admin failed: %v", err)
		}
		if admin.Level != 3 {
			t.Errorf("Admin should be level 3, got %d", admin.Level)
		}

		if _, err := ds.FindStaffByPassword("wrong"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Expected ErrNotFound for wrong password, got %v", err)
		}
	})

	t.Run("ProtectedDelete", func(t *testing.T) {
		staff, err := ds.ListStaff()
		if err != nil {
			t.Fatalf("ListStaff failed: %v", err)
		}
		var ownerID string
		for _, s := range staff {
			if s.Protected {
				ownerID = s.ID
			}
		}
		if err := ds.DeleteStaff(ownerID); !errors.Is(err, ErrProtectedStaff) {
			t.Errorf("Expected ErrProtectedStaff, got %v", err)
		}
		if err := ds.DeleteStaff("staff_ed"); err != nil {
			t.Errorf("Deleting unprotected staff failed: %v", err)
		}
	})
}

func TestUpsertSettings(t *testing.T) {
	ds := setupTestStore(t)

	s, err := ds.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	s.BrandName = "New Brand"
	s.FacebookLink = "https://facebook.com/newbrand"
	stored, err := ds.UpsertSettings(s)
	if err != nil {
		t.Fatalf("UpsertSettings failed: %v", err)
	}
	if stored.BrandName != "New Brand" {
		t.Errorf("Upsert did not apply: %+v", stored)
	}

	again, err := ds.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings after upsert failed: %v", err)
	}
	if again.BrandName != "New Brand" || again.FacebookLink != "https://facebook.com/newbrand" {
		t.Errorf("Settings cache out of date: %+v", again)
	}
}

func TestFilePartialUpdate(t *testing.T) {
	ds := setupTestStore(t)

	if err := ds.CreateFolder(models.Folder{ID: "fol_1", CategoryID: "cat_photos", Name: "Trips"}); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	f := models.File{
		ID: "file_1", FolderID: "fol_1", CategoryID: "cat_photos",
		Name: "beach.jpg", MediaType: models.MediaImage, URL: "https://example.com/beach.jpg",
		Likes: 3, Approved: true, UploadDate: time.Now().UTC(),
	}
	if err := ds.CreateFile(f); err != nil {
		t.Fatalf("CreateFile failed: %v", err)
	}

	likes := 4
	updated, err := ds.UpdateFile("file_1", models.FileUpdate{Likes: &likes})
	if err != nil {
		t.Fatalf("UpdateFile failed: %v", err)
	}
	if updated.Likes != 4 || updated.Name != "beach.jpg" || !updated.Approved {
		t.Errorf("Likes-only update touched other fields: %+v", updated)
	}
}
