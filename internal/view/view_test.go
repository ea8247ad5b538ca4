package view

import (
	"testing"

	"github.com/Cassandrat897/keepy-app/internal/model"
)

var (
	testFolders = []model.Folder{
		{ID: "f1", Name: "Life", CreatedAt: 100},
		{ID: "f2", Name: "Work", CreatedAt: 200},
	}
	testCategories = []model.Category{
		{ID: "c1", Name: "Travel", Color: "#BAE1FF", FolderID: "f1", CreatedAt: 10},
		{ID: "c2", Name: "Hiking", Color: "#BAE1FF", ParentID: "c1", CreatedAt: 20},
		{ID: "c3", Name: "Food", Color: "#FFB3BA", FolderID: "f1", CreatedAt: 30},
		{ID: "c4", Name: "Clients", Color: "#BAFFC9", FolderID: "f2", CreatedAt: 40},
	}
	testProfiles = []model.Profile{
		{ID: "p1", Username: "wanderer", Platform: model.PlatformInstagram, CategoryID: "c1", CreatedAt: 1},
		{ID: "p2", Username: "trailmix", Platform: model.PlatformTikTok, CategoryID: "c2", Notes: "alpine", CreatedAt: 2},
		{ID: "p3", Username: "chef", DisplayName: "The Chef", Platform: model.PlatformInstagram, CategoryID: "c3", CreatedAt: 3},
		{ID: "p4", Username: "acme", Platform: model.PlatformWebsite, CategoryID: "c4", CreatedAt: 4},
	}
)

func ids(profiles []model.Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTree(t *testing.T) {
	groups := Tree(testFolders, testCategories, model.SortAZ)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	life := groups[0]
	if life.Folder.ID != "f1" {
		t.Fatalf("first folder = %s, want f1 (Life before Work)", life.Folder.ID)
	}
	if len(life.Roots) != 2 {
		t.Fatalf("Life roots = %d, want 2", len(life.Roots))
	}
	// Alphabetical: Food before Travel.
	if life.Roots[0].Name != "Food" || life.Roots[1].Name != "Travel" {
		t.Errorf("root order = %s, %s", life.Roots[0].Name, life.Roots[1].Name)
	}
	travel := life.Roots[1]
	if len(travel.Children) != 1 || travel.Children[0].ID != "c2" {
		t.Errorf("Travel children = %+v, want Hiking", travel.Children)
	}
}

func TestTreeUnfiledBucket(t *testing.T) {
	categories := append([]model.Category{}, testCategories...)
	categories = append(categories, model.Category{ID: "c5", Name: "Loose", Color: "#F0F0F0", CreatedAt: 50})

	groups := Tree(testFolders, categories, model.SortAZ)
	last := groups[len(groups)-1]
	if last.Folder.ID != "" || last.Folder.Name != "Unfiled" {
		t.Fatalf("last group = %+v, want the synthetic Unfiled bucket", last.Folder)
	}
	if len(last.Roots) != 1 || last.Roots[0].ID != "c5" {
		t.Errorf("Unfiled roots = %+v", last.Roots)
	}
}

func TestFilterProfilesByCategoryIncludesChildren(t *testing.T) {
	got := FilterProfiles(testProfiles, testCategories, Filter{CategoryID: "c1"})
	if !equal(ids(got), []string{"p1", "p2"}) {
		t.Errorf("category scope = %v, want [p1 p2]", ids(got))
	}

	// Selecting the subcategory narrows to it alone.
	got = FilterProfiles(testProfiles, testCategories, Filter{CategoryID: "c2"})
	if !equal(ids(got), []string{"p2"}) {
		t.Errorf("sub scope = %v, want [p2]", ids(got))
	}
}

func TestFilterProfilesByFolder(t *testing.T) {
	got := FilterProfiles(testProfiles, testCategories, Filter{FolderID: "f1"})
	// p2 is in a subcategory whose parent belongs to f1.
	if !equal(ids(got), []string{"p1", "p2", "p3"}) {
		t.Errorf("folder scope = %v, want [p1 p2 p3]", ids(got))
	}
}

func TestFilterProfilesQuery(t *testing.T) {
	got := FilterProfiles(testProfiles, testCategories, Filter{Query: "ALPINE"})
	if !equal(ids(got), []string{"p2"}) {
		t.Errorf("notes query = %v, want [p2]", ids(got))
	}

	got = FilterProfiles(testProfiles, testCategories, Filter{Query: "the chef"})
	if !equal(ids(got), []string{"p3"}) {
		t.Errorf("display name query = %v, want [p3]", ids(got))
	}
}

func TestFilterProfilesPlatform(t *testing.T) {
	got := FilterProfiles(testProfiles, testCategories, Filter{Platform: model.PlatformInstagram})
	if !equal(ids(got), []string{"p1", "p3"}) {
		t.Errorf("platform filter = %v, want [p1 p3]", ids(got))
	}
}

func TestFilterProfilesCombined(t *testing.T) {
	got := FilterProfiles(testProfiles, testCategories, Filter{
		FolderID: "f1", Platform: model.PlatformTikTok,
	})
	if !equal(ids(got), []string{"p2"}) {
		t.Errorf("combined filter = %v, want [p2]", ids(got))
	}
}

func TestFilterProfilesDanglingCategory(t *testing.T) {
	profiles := []model.Profile{{ID: "px", Username: "lost", CategoryID: "gone"}}
	if got := FilterProfiles(profiles, testCategories, Filter{FolderID: "f1"}); len(got) != 0 {
		t.Errorf("dangling profile matched a folder scope: %v", ids(got))
	}
	// But it still shows in the unscoped view.
	if got := FilterProfiles(profiles, testCategories, Filter{}); len(got) != 1 {
		t.Error("dangling profile missing from the unscoped view")
	}
}

func TestSortProfiles(t *testing.T) {
	tests := []struct {
		mode model.SortMode
		want []string
	}{
		{model.SortNewest, []string{"p4", "p3", "p2", "p1"}},
		{model.SortOldest, []string{"p1", "p2", "p3", "p4"}},
		// Titles: acme, chef→The Chef, trailmix, wanderer.
		{model.SortAZ, []string{"p4", "p3", "p2", "p1"}},
		{model.SortZA, []string{"p1", "p2", "p3", "p4"}},
	}
	for _, tt := range tests {
		got := SortProfiles(testProfiles, testCategories, tt.mode)
		if !equal(ids(got), tt.want) {
			t.Errorf("%s order = %v, want %v", tt.mode, ids(got), tt.want)
		}
	}
}

func TestSortProfilesByColor(t *testing.T) {
	got := SortProfiles(testProfiles, testCategories, model.SortColor)
	// Colors: p1,p2 #BAE1FF; p4 #BAFFC9; p3 #FFB3BA. Ties break on title.
	want := []string{"p2", "p1", "p4", "p3"}
	if !equal(ids(got), want) {
		t.Errorf("color order = %v, want %v", ids(got), want)
	}
}

func TestSortCategories(t *testing.T) {
	roots := []model.Category{testCategories[0], testCategories[2]}
	got := SortCategories(roots, model.SortNewest)
	if got[0].ID != "c3" {
		t.Errorf("newest first = %s, want c3", got[0].ID)
	}
	got = SortCategories(roots, model.SortAZ)
	if got[0].Name != "Food" {
		t.Errorf("a-z first = %s, want Food", got[0].Name)
	}
}

func TestActiveParentAndSub(t *testing.T) {
	if got := ActiveParent(testCategories, "c1"); got != "c1" {
		t.Errorf("ActiveParent(root) = %q, want c1", got)
	}
	if got := ActiveParent(testCategories, "c2"); got != "c1" {
		t.Errorf("ActiveParent(sub) = %q, want c1", got)
	}
	if got := ActiveParent(testCategories, ""); got != "" {
		t.Errorf("ActiveParent(none) = %q, want empty", got)
	}
	if got := ActiveSub(testCategories, "c2"); got != "c2" {
		t.Errorf("ActiveSub(sub) = %q, want c2", got)
	}
	if got := ActiveSub(testCategories, "c1"); got != "" {
		t.Errorf("ActiveSub(root) = %q, want empty", got)
	}
}
