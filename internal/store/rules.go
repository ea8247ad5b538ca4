package store

import (
	"github.com/google/uuid"

	"github.com/Cassandrat897/keepy-app/internal/logger"
	"github.com/Cassandrat897/keepy-app/internal/model"
)

// GeneralFolderName is where the orphan-migration pass files root
// categories that have neither a parent nor a folder.
const GeneralFolderName = "General"

// CategoryForm carries the category editor state. ID is empty for a new
// category. Unfiled marks an explicit "no folder" choice for a root
// category; without it a root save needs a folder.
type CategoryForm struct {
	ID       string
	Name     string
	Color    string
	ParentID string
	FolderID string
	Unfiled  bool
}

// CanSaveCategory is the advisory validation predicate for the category
// form. A root category needs a folder or an explicit unfiled choice;
// subcategories inherit their folder through the parent.
func (s *Store) CanSaveCategory(form CategoryForm) bool {
	if form.Name == "" {
		return false
	}
	if form.ParentID != "" {
		return true
	}
	return form.FolderID != "" || form.Unfiled
}

// CategoryHasChildren reports whether any category names id as its parent.
// Callers use it to pick the right cascade-delete confirmation and to
// disable re-parenting in the editor.
func (s *Store) CategoryHasChildren(id string) bool {
	for _, c := range s.categories {
		if c.ParentID == id {
			return true
		}
	}
	return false
}

// SaveCategory creates or updates a category, enforcing the hierarchy
// invariants at write time:
//
//   - a subcategory's color is forced to its parent's color, and saving a
//     parent rewrites every direct child's color to match;
//   - a subcategory never carries its own folder;
//   - a category with children keeps its parent field no matter what the
//     form says (parent-lock), and a subcategory cannot be promoted to
//     root through the editor;
//
// Invalid forms are a silent no-op.
func (s *Store) SaveCategory(form CategoryForm) (model.Category, bool) {
	if !s.CanSaveCategory(form) {
		return model.Category{}, false
	}

	parentID := form.ParentID
	if form.ID != "" {
		existing, ok := s.Category(form.ID)
		if !ok {
			return model.Category{}, false
		}
		if s.CategoryHasChildren(existing.ID) {
			// Parent-lock: a parent can never become a child.
			parentID = existing.ParentID
		} else if existing.ParentID != "" && parentID == "" {
			// A subcategory always resolves to some parent.
			parentID = existing.ParentID
		}
	}
	if parentID == form.ID {
		parentID = ""
	}

	color := form.Color
	folderID := form.FolderID
	if parentID != "" {
		if parent, ok := s.Category(parentID); ok {
			color = parent.Color
		}
		folderID = ""
	}

	var saved model.Category
	if form.ID != "" {
		for i := range s.categories {
			if s.categories[i].ID != form.ID {
				continue
			}
			s.categories[i].Name = form.Name
			s.categories[i].Color = color
			s.categories[i].ParentID = parentID
			s.categories[i].FolderID = folderID
			saved = s.categories[i]
		}
		// Color is a property of the root: push it down to every child.
		for i := range s.categories {
			if s.categories[i].ParentID == saved.ID {
				s.categories[i].Color = color
			}
		}
	} else {
		saved = model.Category{
			ID:        uuid.New().String(),
			Name:      form.Name,
			Color:     color,
			ParentID:  parentID,
			FolderID:  folderID,
			CreatedAt: model.Now(),
		}
		s.categories = append(s.categories, saved)
	}

	s.Normalize()
	s.persistCategories()
	return saved, true
}

// DeleteCategory removes the category and its direct children, and clears
// CategoryID on every profile that pointed at any removed id. Profiles are
// never deleted. Returns the removed ids, or nil if the category does not
// exist.
func (s *Store) DeleteCategory(id string) []string {
	if _, ok := s.Category(id); !ok {
		return nil
	}

	removed := map[string]bool{id: true}
	for _, c := range s.categories {
		if c.ParentID == id {
			removed[c.ID] = true
		}
	}

	kept := s.categories[:0]
	var removedIDs []string
	for _, c := range s.categories {
		if removed[c.ID] {
			removedIDs = append(removedIDs, c.ID)
			continue
		}
		kept = append(kept, c)
	}
	s.categories = kept

	uncategorized := false
	for i := range s.profiles {
		if removed[s.profiles[i].CategoryID] {
			s.profiles[i].CategoryID = ""
			uncategorized = true
		}
	}

	s.persistCategories()
	if uncategorized {
		s.persistProfiles()
	}
	logger.Info("Deleted category", logger.F("id", id), logger.F("removed", len(removedIDs)))
	return removedIDs
}

// Normalize is the orphan-migration pass: every root category with neither
// parent nor folder is filed into the "General" folder, reusing an
// existing folder of that name or creating it once. The pass is idempotent
// and runs at load and after category mutations. Returns true when it
// changed anything.
func (s *Store) Normalize() bool {
	var generalID string
	for _, f := range s.folders {
		if f.Name == GeneralFolderName {
			generalID = f.ID
			break
		}
	}

	changed := false
	for i := range s.categories {
		c := &s.categories[i]
		if c.ParentID != "" || c.FolderID != "" {
			continue
		}
		if generalID == "" {
			general := model.Folder{
				ID:        uuid.New().String(),
				Name:      GeneralFolderName,
				CreatedAt: model.Now(),
			}
			s.folders = append(s.folders, general)
			generalID = general.ID
			s.persistFolders()
		}
		c.FolderID = generalID
		changed = true
	}

	if changed {
		s.persistCategories()
	}
	return changed
}
