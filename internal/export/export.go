// Package export turns the current view into a shareable text report and a
// full-fidelity JSON snapshot, and validates snapshots on the way back in.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cassandrat897/keepy-app/internal/model"
	"github.com/Cassandrat897/keepy-app/internal/view"
)

// SnapshotVersion marks the current backup format. Version 1 predates
// folders, which is why they stay optional on import.
const SnapshotVersion = 2

// ErrInvalidSnapshot is returned when a backup file is missing the
// required categories or profiles arrays, or is not valid JSON.
var ErrInvalidSnapshot = errors.New("invalid backup file")

// Snapshot is the backup file format: a lossless dump of all three
// collections, regardless of any active filter.
type Snapshot struct {
	Folders    []model.Folder   `json:"folders"`
	Categories []model.Category `json:"categories"`
	Profiles   []model.Profile  `json:"profiles"`
	Version    int              `json:"version"`
	ExportedAt int64            `json:"exportedAt"`
}

// NewSnapshot builds a snapshot of the full store contents.
func NewSnapshot(folders []model.Folder, categories []model.Category, profiles []model.Profile) Snapshot {
	if folders == nil {
		folders = []model.Folder{}
	}
	if categories == nil {
		categories = []model.Category{}
	}
	if profiles == nil {
		profiles = []model.Profile{}
	}
	return Snapshot{
		Folders:    folders,
		Categories: categories,
		Profiles:   profiles,
		Version:    SnapshotVersion,
		ExportedAt: time.Now().UnixMilli(),
	}
}

// Marshal renders the snapshot as indented UTF-8 JSON.
func (s Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

// Filename returns the date-stamped backup filename convention.
func Filename(now time.Time) string {
	return "keepy-backup-" + now.Format("2006-01-02") + ".json"
}

// ParseSnapshot validates and decodes a backup file. A file is accepted
// only if it carries array-typed categories and profiles; folders are
// optional for exports that predate the folder concept. Anything else is
// ErrInvalidSnapshot and the caller must leave its store untouched.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var probe struct {
		Folders    json.RawMessage `json:"folders"`
		Categories json.RawMessage `json:"categories"`
		Profiles   json.RawMessage `json:"profiles"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if !isArray(probe.Categories) || !isArray(probe.Profiles) {
		return Snapshot{}, fmt.Errorf("%w: categories and profiles must be arrays", ErrInvalidSnapshot)
	}
	if len(probe.Folders) > 0 && !isArray(probe.Folders) && !isNull(probe.Folders) {
		return Snapshot{}, fmt.Errorf("%w: folders must be an array", ErrInvalidSnapshot)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	for i := range snap.Profiles {
		snap.Profiles[i].Platform = model.MigratePlatform(snap.Profiles[i].Platform)
	}
	return snap, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return strings.HasPrefix(trimmed, "[")
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// ProfileLink resolves a profile to an opener URL. A username that already
// carries a URL scheme is used verbatim; otherwise the canonical per
// platform URL is built. TikTok handles get their leading @ stripped
// before the @ the URL itself requires.
func ProfileLink(p model.Profile) string {
	if strings.HasPrefix(p.Username, "http") {
		return p.Username
	}
	switch p.Platform {
	case model.PlatformInstagram:
		return "https://instagram.com/" + p.Username
	case model.PlatformFacebook:
		return "https://facebook.com/" + p.Username
	case model.PlatformX:
		return "https://x.com/" + p.Username
	case model.PlatformTikTok:
		return "https://tiktok.com/@" + strings.TrimPrefix(p.Username, "@")
	case model.PlatformWebsite:
		return "https://" + p.Username
	default:
		return "#"
	}
}

// Report renders the grouped text report for the given (already filtered)
// profiles: folder header, parent category header, indented subcategory
// header, one bullet line per profile. Groups without matching profiles
// are omitted; profiles whose category cannot be resolved are skipped.
func Report(title string, profiles []model.Profile, folders []model.Folder, categories []model.Category) string {
	var b strings.Builder
	b.WriteString("📂 " + title + "\n(Shared via Keepy)\n\n")

	byCategory := make(map[string][]model.Profile)
	for _, p := range profiles {
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	// Count matches per root so empty folder and category headers never
	// print.
	groupTotal := func(root view.Node) int {
		n := len(byCategory[root.ID])
		for _, sub := range root.Children {
			n += len(byCategory[sub.ID])
		}
		return n
	}

	for _, group := range view.Tree(folders, categories, model.SortAZ) {
		folderTotal := 0
		for _, root := range group.Roots {
			folderTotal += groupTotal(root)
		}
		if folderTotal == 0 {
			continue
		}

		b.WriteString(group.Folder.Name + "\n")
		for _, root := range group.Roots {
			if groupTotal(root) == 0 {
				continue
			}
			b.WriteString("  " + root.Name + ":\n")
			for _, p := range byCategory[root.ID] {
				b.WriteString("  " + formatLine(p) + "\n")
			}
			for _, sub := range root.Children {
				if len(byCategory[sub.ID]) == 0 {
					continue
				}
				b.WriteString("    " + sub.Name + ":\n")
				for _, p := range byCategory[sub.ID] {
					b.WriteString("    " + formatLine(p) + "\n")
				}
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatLine(p model.Profile) string {
	return fmt.Sprintf("• [%s] %s: %s", p.Platform.Label(), p.Title(), ProfileLink(p))
}
