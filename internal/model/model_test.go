package model

import "testing"

func TestMigratePlatform(t *testing.T) {
	tests := []struct {
		in   Platform
		want Platform
	}{
		{"twitter", PlatformX},
		{"", PlatformInstagram},
		{PlatformInstagram, PlatformInstagram},
		{PlatformTikTok, PlatformTikTok},
		{PlatformWebsite, PlatformWebsite},
	}
	for _, tt := range tests {
		if got := MigratePlatform(tt.in); got != tt.want {
			t.Errorf("MigratePlatform(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlatformValid(t *testing.T) {
	for _, p := range Platforms {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if Platform("twitter").Valid() {
		t.Error("legacy twitter tag should not be valid")
	}
	if Platform("").Valid() {
		t.Error("empty platform should not be valid")
	}
}

func TestPlatformLabel(t *testing.T) {
	if got := PlatformWebsite.Label(); got != "Web" {
		t.Errorf("website label = %q, want Web", got)
	}
	if got := PlatformX.Label(); got != "X" {
		t.Errorf("x label = %q, want X", got)
	}
}

func TestProfileTitle(t *testing.T) {
	p := Profile{Username: "handle"}
	if p.Title() != "handle" {
		t.Errorf("Title() = %q, want handle", p.Title())
	}
	p.DisplayName = "Display"
	if p.Title() != "Display" {
		t.Errorf("Title() = %q, want Display", p.Title())
	}
}
