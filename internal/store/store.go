package store

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Cassandrat897/keepy-app/internal/db"
	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/model"
)

// Store owns the three entity collections. It is the single writer: all
// mutation goes through named operations, runs synchronously, and is
// written through to the KV adapter on success. A persistence failure is
// logged and returned but never rolls back the in-memory change.
type Store struct {
	kv *db.KV

	folders    []model.Folder
	categories []model.Category
	profiles   []model.Profile
}

// Open loads the persisted collections, migrates legacy profile records,
// and runs the orphan-migration pass once.
func Open(kv *db.KV) (*Store, error) {
	s := &Store{kv: kv}
	if err := s.load(); err != nil {
		return nil, err
	}
	if s.Normalize() {
		logger.Info("Orphan migration applied on load")
	}
	return s, nil
}

func (s *Store) load() error {
	if err := loadKey(s.kv, db.KeyFolders, &s.folders); err != nil {
		return err
	}
	if err := loadKey(s.kv, db.KeyCategories, &s.categories); err != nil {
		return err
	}
	if err := loadKey(s.kv, db.KeyProfiles, &s.profiles); err != nil {
		return err
	}

	// Legacy records: rewrite old platform tags, default missing ones.
	migrated := false
	for i := range s.profiles {
		p := model.MigratePlatform(s.profiles[i].Platform)
		if p != s.profiles[i].Platform {
			s.profiles[i].Platform = p
			migrated = true
		}
	}
	if migrated {
		logger.Info("Migrated legacy profile platforms")
		s.persistProfiles()
	}
	return nil
}

func loadKey[T any](kv *db.KV, key string, out *[]T) error {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok || raw == "" {
		*out = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

// Folders returns a copy of the folder collection.
func (s *Store) Folders() []model.Folder {
	out := make([]model.Folder, len(s.folders))
	copy(out, s.folders)
	return out
}

// Categories returns a copy of the category collection.
func (s *Store) Categories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Profiles returns a copy of the profile collection.
func (s *Store) Profiles() []model.Profile {
	out := make([]model.Profile, len(s.profiles))
	copy(out, s.profiles)
	return out
}

// Folder looks up a folder by id.
func (s *Store) Folder(id string) (model.Folder, bool) {
	for _, f := range s.folders {
		if f.ID == id {
			return f, true
		}
	}
	return model.Folder{}, false
}

// Category looks up a category by id.
func (s *Store) Category(id string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Profile looks up a profile by id.
func (s *Store) Profile(id string) (model.Profile, bool) {
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return model.Profile{}, false
}

// CreateFolder adds a folder. Empty names are a silent no-op.
func (s *Store) CreateFolder(name string) (model.Folder, bool) {
	if name == "" {
		return model.Folder{}, false
	}
	f := model.Folder{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: model.Now(),
	}
	s.folders = append(s.folders, f)
	s.persistFolders()
	return f, true
}

// RenameFolder changes a folder's name. Missing folder or empty name is a
// silent no-op.
func (s *Store) RenameFolder(id, name string) bool {
	if name == "" {
		return false
	}
	for i := range s.folders {
		if s.folders[i].ID == id {
			s.folders[i].Name = name
			s.persistFolders()
			return true
		}
	}
	return false
}

// DeleteFolder removes the folder and unfiles its categories (their
// FolderID is cleared). Profiles are never touched. The categories stay
// unfiled until the next orphan-migration pass reclaims them, so the user
// can re-file them first. Returns false if the folder does not exist.
func (s *Store) DeleteFolder(id string) bool {
	idx := -1
	for i, f := range s.folders {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.folders = append(s.folders[:idx], s.folders[idx+1:]...)

	for i := range s.categories {
		if s.categories[i].FolderID == id {
			s.categories[i].FolderID = ""
		}
	}

	s.persistFolders()
	s.persistCategories()
	return true
}

// ProfileForm carries the profile editor state. ID is empty for a new
// profile.
type ProfileForm struct {
	ID          string
	Username    string
	DisplayName string
	Platform    model.Platform
	CategoryID  string
	Notes       string
}

// CanSaveProfile is the advisory validation predicate for the profile
// form: the presentation layer disables the save action while it is false.
func (s *Store) CanSaveProfile(form ProfileForm) bool {
	return form.Username != "" && form.CategoryID != ""
}

// SaveProfile creates or updates a profile. Invalid forms are a silent
// no-op. CreatedAt is set once at creation and never mutated.
func (s *Store) SaveProfile(form ProfileForm) (model.Profile, bool) {
	if !s.CanSaveProfile(form) {
		return model.Profile{}, false
	}

	platform := model.MigratePlatform(form.Platform)
	username := model.CleanUsername(form.Username, platform)

	if form.ID != "" {
		for i := range s.profiles {
			if s.profiles[i].ID == form.ID {
				s.profiles[i].Username = username
				s.profiles[i].DisplayName = form.DisplayName
				s.profiles[i].Platform = platform
				s.profiles[i].CategoryID = form.CategoryID
				s.profiles[i].Notes = form.Notes
				s.persistProfiles()
				return s.profiles[i], true
			}
		}
		return model.Profile{}, false
	}

	p := model.Profile{
		ID:          uuid.New().String(),
		Username:    username,
		DisplayName: form.DisplayName,
		Platform:    platform,
		CategoryID:  form.CategoryID,
		Notes:       form.Notes,
		CreatedAt:   model.Now(),
	}
	s.profiles = append(s.profiles, p)
	s.persistProfiles()
	return p, true
}

// DeleteProfile removes a profile. Returns false if it does not exist.
func (s *Store) DeleteProfile(id string) bool {
	for i, p := range s.profiles {
		if p.ID == id {
			s.profiles = append(s.profiles[:i], s.profiles[i+1:]...)
			s.persistProfiles()
			return true
		}
	}
	return false
}

// ReplaceAll swaps in a full set of collections (the import path). Legacy
// platform tags are migrated and the orphan pass runs before persisting.
func (s *Store) ReplaceAll(folders []model.Folder, categories []model.Category, profiles []model.Profile) {
	s.folders = folders
	s.categories = categories
	s.profiles = profiles

	for i := range s.profiles {
		s.profiles[i].Platform = model.MigratePlatform(s.profiles[i].Platform)
	}
	s.Normalize()

	s.persistFolders()
	s.persistCategories()
	s.persistProfiles()
}

func (s *Store) persistFolders() {
	persistKey(s.kv, db.KeyFolders, s.folders)
}

func (s *Store) persistCategories() {
	persistKey(s.kv, db.KeyCategories, s.categories)
}

func (s *Store) persistProfiles() {
	persistKey(s.kv, db.KeyProfiles, s.profiles)
}

func persistKey[T any](kv *db.KV, key string, in []T) {
	if in == nil {
		in = []T{}
	}
	data, err := json.Marshal(in)
	if err != nil {
		logger.Error("Failed to marshal collection", logger.F("key", key), logger.F("error", err))
		return
	}
	if err := kv.Set(key, string(data)); err != nil {
		// Best-effort write-through: the in-memory state stands.
		logger.Error("Failed to persist collection", logger.F("key", key), logger.F("error", err))
	}
}
