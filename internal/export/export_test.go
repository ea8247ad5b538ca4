package export

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/Cassandrat897/keepy-app/internal/model"
)

func TestProfileLink(t *testing.T) {
	tests := []struct {
		name    string
		profile model.Profile
		want    string
	}{
		{"instagram", model.Profile{Username: "u", Platform: model.PlatformInstagram}, "https://instagram.com/u"},
		{"facebook", model.Profile{Username: "u", Platform: model.PlatformFacebook}, "https://facebook.com/u"},
		{"x", model.Profile{Username: "u", Platform: model.PlatformX}, "https://x.com/u"},
		{"tiktok", model.Profile{Username: "u", Platform: model.PlatformTikTok}, "https://tiktok.com/@u"},
		{"tiktok strips at", model.Profile{Username: "@u", Platform: model.PlatformTikTok}, "https://tiktok.com/@u"},
		{"website", model.Profile{Username: "example.com", Platform: model.PlatformWebsite}, "https://example.com"},
		{"full url verbatim", model.Profile{Username: "https://example.com/x", Platform: model.PlatformInstagram}, "https://example.com/x"},
		{"unknown platform", model.Profile{Username: "u", Platform: "gopher"}, "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProfileLink(tt.profile); got != tt.want {
				t.Errorf("ProfileLink = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "keepy-backup-2026-03-14.json" {
		t.Errorf("Filename = %q", got)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := NewSnapshot(
		[]model.Folder{{ID: "f1", Name: "Life", CreatedAt: 1}},
		[]model.Category{{ID: "c1", Name: "Travel", Color: "#BAE1FF", FolderID: "f1", CreatedAt: 2}},
		[]model.Profile{{ID: "p1", Username: "u", Platform: model.PlatformInstagram, CategoryID: "c1", CreatedAt: 3}},
	)
	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if !reflect.DeepEqual(got.Folders, snap.Folders) ||
		!reflect.DeepEqual(got.Categories, snap.Categories) ||
		!reflect.DeepEqual(got.Profiles, snap.Profiles) {
		t.Errorf("round trip not field-for-field identical:\n got %+v\nwant %+v", got, snap)
	}
	if got.Version != SnapshotVersion {
		t.Errorf("version = %d, want %d", got.Version, SnapshotVersion)
	}
}

func TestNewSnapshotNilCollections(t *testing.T) {
	snap := NewSnapshot(nil, nil, nil)
	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	if strings.Contains(s, "null") {
		t.Errorf("nil collections serialized as null:\n%s", s)
	}
}

func TestParseSnapshotValidation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"not json", "not json at all", false},
		{"categories not array", `{"categories":{},"profiles":[]}`, false},
		{"profiles missing", `{"categories":[]}`, false},
		{"folders optional", `{"categories":[],"profiles":[]}`, true},
		{"folders null", `{"folders":null,"categories":[],"profiles":[]}`, true},
		{"folders not array", `{"folders":42,"categories":[],"profiles":[]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.input))
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("invalid snapshot accepted")
			}
		})
	}
}

func TestParseSnapshotMigratesPlatforms(t *testing.T) {
	input := `{"categories":[],"profiles":[{"id":"p1","username":"u","platform":"twitter","categoryId":"c1","createdAt":1}]}`
	snap, err := ParseSnapshot([]byte(input))
	if err != nil {
		t.Fatalf("ParseSnapshot: %v", err)
	}
	if snap.Profiles[0].Platform != model.PlatformX {
		t.Errorf("platform = %q, want x", snap.Profiles[0].Platform)
	}
}

func TestReport(t *testing.T) {
	folders := []model.Folder{
		{ID: "f1", Name: "Life", CreatedAt: 1},
		{ID: "f2", Name: "Empty", CreatedAt: 2},
	}
	categories := []model.Category{
		{ID: "c1", Name: "Travel", Color: "#BAE1FF", FolderID: "f1", CreatedAt: 1},
		{ID: "c2", Name: "Hiking", Color: "#BAE1FF", ParentID: "c1", CreatedAt: 2},
		{ID: "c3", Name: "Food", Color: "#FFB3BA", FolderID: "f1", CreatedAt: 3},
	}
	profiles := []model.Profile{
		{ID: "p1", Username: "wanderer", Platform: model.PlatformInstagram, CategoryID: "c1"},
		{ID: "p2", Username: "trailmix", DisplayName: "Trail Mix", Platform: model.PlatformTikTok, CategoryID: "c2"},
		{ID: "p3", Username: "ghost", Platform: model.PlatformInstagram, CategoryID: "gone"},
	}

	report := Report("My Profiles", profiles, folders, categories)

	if !strings.HasPrefix(report, "📂 My Profiles\n(Shared via Keepy)\n\n") {
		t.Errorf("missing header:\n%s", report)
	}
	if !strings.Contains(report, "Life\n") {
		t.Error("folder header missing")
	}
	if !strings.Contains(report, "  Travel:\n") {
		t.Error("category header missing")
	}
	if !strings.Contains(report, "    Hiking:\n") {
		t.Error("subcategory header missing")
	}
	if !strings.Contains(report, "• [Instagram] wanderer: https://instagram.com/wanderer") {
		t.Error("profile line missing or malformed")
	}
	if !strings.Contains(report, "• [TikTok] Trail Mix: https://tiktok.com/@trailmix") {
		t.Error("display name not used in profile line")
	}

	// Groups without matches never print.
	if strings.Contains(report, "Empty") {
		t.Error("empty folder header printed")
	}
	if strings.Contains(report, "Food") {
		t.Error("empty category header printed")
	}
	// A dangling category id is silently skipped.
	if strings.Contains(report, "ghost") {
		t.Error("profile with dangling category appeared")
	}
}
