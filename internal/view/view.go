// Package view derives the read-only structures the presentation layer
// renders: the folder/category tree, the filtered profile list, and the
// two-level selector state. Everything here is a pure function over store
// snapshots; nothing mutates.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Cassandrat897/keepy-app/internal/model"
)

// collator does locale-aware, case-insensitive name comparison for every
// sort mode that orders by name.
var collator = collate.New(language.Und, collate.IgnoreCase)

// Node is one root category with its sorted subcategories attached.
type Node struct {
	model.Category
	Children []model.Category
}

// FolderGroup is a folder with its sorted root categories. A group with an
// empty Folder.ID is the synthetic unfiled bucket; after the orphan
// migration runs it is normally empty.
type FolderGroup struct {
	Folder model.Folder
	Roots  []Node
}

// Tree groups root categories by folder and attaches each root's direct
// children. Folders and roots follow the given sort mode; children are
// always alphabetical.
func Tree(folders []model.Folder, categories []model.Category, mode model.SortMode) []FolderGroup {
	roots := make(map[string][]model.Category)
	for _, c := range categories {
		if c.IsRoot() {
			roots[c.FolderID] = append(roots[c.FolderID], c)
		}
	}

	sortedFolders := SortFolders(folders, mode)

	var groups []FolderGroup
	for _, f := range sortedFolders {
		groups = append(groups, FolderGroup{
			Folder: f,
			Roots:  buildNodes(roots[f.ID], categories, mode),
		})
	}
	if unfiled := roots[""]; len(unfiled) > 0 {
		groups = append(groups, FolderGroup{
			Folder: model.Folder{Name: "Unfiled"},
			Roots:  buildNodes(unfiled, categories, mode),
		})
	}
	return groups
}

func buildNodes(roots []model.Category, all []model.Category, mode model.SortMode) []Node {
	sorted := SortCategories(roots, mode)
	nodes := make([]Node, 0, len(sorted))
	for _, root := range sorted {
		var children []model.Category
		for _, c := range all {
			if c.ParentID == root.ID {
				children = append(children, c)
			}
		}
		nodes = append(nodes, Node{
			Category: root,
			Children: SortCategories(children, model.SortAZ),
		})
	}
	return nodes
}

// SortFolders returns a sorted copy of folders. The color mode falls back
// to name order since folders carry no color.
func SortFolders(folders []model.Folder, mode model.SortMode) []model.Folder {
	out := make([]model.Folder, len(folders))
	copy(out, folders)
	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case model.SortZA:
			return compareNames(out[j].Name, out[i].Name)
		case model.SortNewest:
			return out[i].CreatedAt > out[j].CreatedAt
		case model.SortOldest:
			return out[i].CreatedAt < out[j].CreatedAt
		default:
			return compareNames(out[i].Name, out[j].Name)
		}
	})
	return out
}

// SortCategories returns a sorted copy of categories. Newest/oldest use
// CreatedAt; color sorts by color with name as tiebreak.
func SortCategories(categories []model.Category, mode model.SortMode) []model.Category {
	out := make([]model.Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case model.SortZA:
			return compareNames(out[j].Name, out[i].Name)
		case model.SortNewest:
			return out[i].CreatedAt > out[j].CreatedAt
		case model.SortOldest:
			return out[i].CreatedAt < out[j].CreatedAt
		case model.SortColor:
			if out[i].Color != out[j].Color {
				return out[i].Color < out[j].Color
			}
			return compareNames(out[i].Name, out[j].Name)
		default:
			return compareNames(out[i].Name, out[j].Name)
		}
	})
	return out
}

// SortProfiles returns a sorted copy of profiles. Name modes compare the
// display name falling back to username; newest/oldest compare CreatedAt;
// color sorts by the resolved category color with name as tiebreak.
func SortProfiles(profiles []model.Profile, categories []model.Category, mode model.SortMode) []model.Profile {
	out := make([]model.Profile, len(profiles))
	copy(out, profiles)

	colorOf := func(p model.Profile) string {
		for _, c := range categories {
			if c.ID == p.CategoryID {
				return c.Color
			}
		}
		return ""
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch mode {
		case model.SortZA:
			return compareNames(out[j].Title(), out[i].Title())
		case model.SortNewest:
			return out[i].CreatedAt > out[j].CreatedAt
		case model.SortOldest:
			return out[i].CreatedAt < out[j].CreatedAt
		case model.SortColor:
			ci, cj := colorOf(out[i]), colorOf(out[j])
			if ci != cj {
				return ci < cj
			}
			return compareNames(out[i].Title(), out[j].Title())
		default:
			return compareNames(out[i].Title(), out[j].Title())
		}
	})
	return out
}

func compareNames(a, b string) bool {
	return collator.CompareString(a, b) < 0
}

// Filter is the active view scope. A set CategoryID narrows to that
// category and its direct children; otherwise a set FolderID narrows to
// the folder's categories and their subcategories; otherwise everything
// matches. Query is a case-insensitive substring search and Platform an
// exact match ("" means all).
type Filter struct {
	Query      string
	FolderID   string
	CategoryID string
	Platform   model.Platform
}

// FilterProfiles returns the profiles matching f, in input order.
func FilterProfiles(profiles []model.Profile, categories []model.Category, f Filter) []model.Profile {
	query := strings.ToLower(f.Query)

	var out []model.Profile
	for _, p := range profiles {
		if query != "" {
			match := strings.Contains(strings.ToLower(p.Username), query) ||
				strings.Contains(strings.ToLower(p.Notes), query) ||
				strings.Contains(strings.ToLower(p.DisplayName), query)
			if !match {
				continue
			}
		}

		if f.CategoryID != "" {
			if !inCategoryScope(p.CategoryID, f.CategoryID, categories) {
				continue
			}
		} else if f.FolderID != "" {
			if !inFolderScope(p.CategoryID, f.FolderID, categories) {
				continue
			}
		}

		if f.Platform != "" && p.Platform != f.Platform {
			continue
		}

		out = append(out, p)
	}
	return out
}

// inCategoryScope reports whether categoryID is selectedID or one of its
// direct children.
func inCategoryScope(categoryID, selectedID string, categories []model.Category) bool {
	if categoryID == selectedID {
		return true
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c.ParentID == selectedID
		}
	}
	return false
}

// inFolderScope reports whether the profile's category, or that category's
// parent, belongs to the folder.
func inFolderScope(categoryID, folderID string, categories []model.Category) bool {
	var cat *model.Category
	for i := range categories {
		if categories[i].ID == categoryID {
			cat = &categories[i]
			break
		}
	}
	if cat == nil {
		return false
	}
	if cat.FolderID == folderID {
		return true
	}
	if cat.ParentID == "" {
		return false
	}
	for _, c := range categories {
		if c.ID == cat.ParentID {
			return c.FolderID == folderID
		}
	}
	return false
}

// ActiveParent resolves the parent slot of a two-level selector: the
// selected category itself when it is a root, else its parent.
func ActiveParent(categories []model.Category, selectedID string) string {
	if selectedID == "" {
		return ""
	}
	for _, c := range categories {
		if c.ID == selectedID {
			if c.ParentID != "" {
				return c.ParentID
			}
			return c.ID
		}
	}
	return ""
}

// ActiveSub resolves the subcategory slot: the selected category when it
// has a parent, else empty.
func ActiveSub(categories []model.Category, selectedID string) string {
	for _, c := range categories {
		if c.ID == selectedID && c.ParentID != "" {
			return c.ID
		}
	}
	return ""
}
