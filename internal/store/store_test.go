package store

import (
	"path/filepath"
	"testing"

	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/model"
)

func newTestStore(t *testing.T) (*db.KV, *Store) {
	t.Helper()
	kv, err := db.Open(filepath.Join(t.TempDir(), "keepy.db"))
	if err != nil {
		t.Fatalf("Open kv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	st, err := Open(kv)
	if err != nil {
		t.Fatalf("Open store: %v", err)
	}
	return kv, st
}

// mustCategory creates a category and fails the test on a rejected form.
func mustCategory(t *testing.T, st *Store, form CategoryForm) model.Category {
	t.Helper()
	c, ok := st.SaveCategory(form)
	if !ok {
		t.Fatalf("SaveCategory(%+v) rejected", form)
	}
	return c
}

func TestCreateFolder(t *testing.T) {
	_, st := newTestStore(t)

	f, ok := st.CreateFolder("Life")
	if !ok {
		t.Fatal("CreateFolder rejected")
	}
	if f.ID == "" || f.CreatedAt == 0 {
		t.Errorf("folder not fully populated: %+v", f)
	}

	if _, ok := st.CreateFolder(""); ok {
		t.Error("empty folder name should be a no-op")
	}
}

func TestRenameFolder(t *testing.T) {
	_, st := newTestStore(t)

	f, _ := st.CreateFolder("Life")
	if !st.RenameFolder(f.ID, "Personal") {
		t.Fatal("RenameFolder failed")
	}
	got, _ := st.Folder(f.ID)
	if got.Name != "Personal" {
		t.Errorf("name = %q, want Personal", got.Name)
	}

	if st.RenameFolder(f.ID, "") {
		t.Error("empty name should be a no-op")
	}
	if st.RenameFolder("missing", "X") {
		t.Error("renaming a missing folder should fail")
	}
}

func TestSaveProfileCleansInput(t *testing.T) {
	_, st := newTestStore(t)

	f, _ := st.CreateFolder("Life")
	cat := mustCategory(t, st, CategoryForm{Name: "Travel", Color: "#BAE1FF", FolderID: f.ID})

	p, ok := st.SaveProfile(ProfileForm{
		Username:   "https://instagram.com/wanderer",
		Platform:   model.PlatformInstagram,
		CategoryID: cat.ID,
	})
	if !ok {
		t.Fatal("SaveProfile rejected")
	}
	if p.Username != "wanderer" {
		t.Errorf("username = %q, want wanderer", p.Username)
	}
	if p.ID == "" || p.CreatedAt == 0 {
		t.Errorf("profile not fully populated: %+v", p)
	}
}

func TestSaveProfileValidation(t *testing.T) {
	_, st := newTestStore(t)

	if st.CanSaveProfile(ProfileForm{Username: "x"}) {
		t.Error("profile without category should not be saveable")
	}
	if st.CanSaveProfile(ProfileForm{CategoryID: "c1"}) {
		t.Error("profile without username should not be saveable")
	}
	if _, ok := st.SaveProfile(ProfileForm{Username: "x"}); ok {
		t.Error("invalid form should be a silent no-op")
	}
}

func TestUpdateProfileKeepsCreatedAt(t *testing.T) {
	_, st := newTestStore(t)

	f, _ := st.CreateFolder("Life")
	cat := mustCategory(t, st, CategoryForm{Name: "Travel", Color: "#BAE1FF", FolderID: f.ID})

	p, _ := st.SaveProfile(ProfileForm{Username: "first", Platform: model.PlatformInstagram, CategoryID: cat.ID})

	updated, ok := st.SaveProfile(ProfileForm{
		ID:          p.ID,
		Username:    "second",
		DisplayName: "Renamed",
		Platform:    model.PlatformX,
		CategoryID:  cat.ID,
	})
	if !ok {
		t.Fatal("update rejected")
	}
	if updated.CreatedAt != p.CreatedAt {
		t.Errorf("CreatedAt changed on update: %d -> %d", p.CreatedAt, updated.CreatedAt)
	}
	if updated.Username != "second" || updated.Platform != model.PlatformX {
		t.Errorf("update not applied: %+v", updated)
	}
	if len(st.Profiles()) != 1 {
		t.Errorf("update created a duplicate: %d profiles", len(st.Profiles()))
	}
}

func TestDeleteProfile(t *testing.T) {
	_, st := newTestStore(t)

	f, _ := st.CreateFolder("Life")
	cat := mustCategory(t, st, CategoryForm{Name: "Travel", Color: "#BAE1FF", FolderID: f.ID})
	p, _ := st.SaveProfile(ProfileForm{Username: "u", Platform: model.PlatformInstagram, CategoryID: cat.ID})

	if !st.DeleteProfile(p.ID) {
		t.Fatal("DeleteProfile failed")
	}
	if len(st.Profiles()) != 0 {
		t.Error("profile still present")
	}
	if st.DeleteProfile(p.ID) {
		t.Error("double delete should fail")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	kv, st := newTestStore(t)

	f, _ := st.CreateFolder("Life")
	cat := mustCategory(t, st, CategoryForm{Name: "Travel", Color: "#BAE1FF", FolderID: f.ID})
	st.SaveProfile(ProfileForm{Username: "u", Platform: model.PlatformInstagram, CategoryID: cat.ID})

	st2, err := Open(kv)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	if len(st2.Folders()) != 1 || len(st2.Categories()) != 1 || len(st2.Profiles()) != 1 {
		t.Errorf("collections lost across reopen: %d/%d/%d",
			len(st2.Folders()), len(st2.Categories()), len(st2.Profiles()))
	}
}

func TestOpenMigratesLegacyPlatforms(t *testing.T) {
	kv, err := db.Open(filepath.Join(t.TempDir(), "keepy.db"))
	if err != nil {
		t.Fatalf("Open kv: %v", err)
	}
	defer kv.Close()

	if err := kv.Set(db.KeyProfiles,
		`[{"id":"p1","username":"old","platform":"twitter","categoryId":"c1","notes":"","createdAt":1},
		  {"id":"p2","username":"none","platform":"","categoryId":"c1","notes":"","createdAt":2}]`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	st, err := Open(kv)
	if err != nil {
		t.Fatalf("Open store: %v", err)
	}
	profiles := st.Profiles()
	if profiles[0].Platform != model.PlatformX {
		t.Errorf("twitter not migrated: %q", profiles[0].Platform)
	}
	if profiles[1].Platform != model.PlatformInstagram {
		t.Errorf("missing platform not defaulted: %q", profiles[1].Platform)
	}
}

func TestReplaceAll(t *testing.T) {
	_, st := newTestStore(t)

	st.CreateFolder("Old")

	folders := []model.Folder{{ID: "f1", Name: "Imported", CreatedAt: 1}}
	categories := []model.Category{
		{ID: "c1", Name: "Root", Color: "#FFB3BA", FolderID: "f1", CreatedAt: 1},
		{ID: "c2", Name: "Orphan", Color: "#FFB3BA", CreatedAt: 2},
	}
	profiles := []model.Profile{
		{ID: "p1", Username: "legacy", Platform: "twitter", CategoryID: "c1", CreatedAt: 1},
	}

	st.ReplaceAll(folders, categories, profiles)

	if len(st.Folders()) != 2 {
		// Imported plus the General folder created for the orphan.
		t.Fatalf("folders = %d, want 2", len(st.Folders()))
	}
	if st.Profiles()[0].Platform != model.PlatformX {
		t.Error("imported legacy platform not migrated")
	}
	orphan, _ := st.Category("c2")
	if orphan.FolderID == "" {
		t.Error("orphan category not filed after import")
	}
}
