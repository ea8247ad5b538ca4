package model

import "testing"

func TestCleanUsername(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		platform Platform
		want     string
	}{
		{"bare handle", "cooluser", PlatformInstagram, "cooluser"},
		{"at-prefixed handle", "@cooluser", PlatformInstagram, "cooluser"},
		{"whitespace trimmed", "  cooluser  ", PlatformInstagram, "cooluser"},
		{"instagram url", "https://instagram.com/cooluser", PlatformInstagram, "cooluser"},
		{"instagram url with path", "https://www.instagram.com/cooluser/reels", PlatformInstagram, "cooluser"},
		{"instagram url with query", "https://instagram.com/cooluser?igsh=abc", PlatformInstagram, "cooluser"},
		{"x url", "https://x.com/someone", PlatformX, "someone"},
		{"legacy twitter url", "https://twitter.com/someone", PlatformX, "someone"},
		{"tiktok url with at", "https://tiktok.com/@dancer", PlatformTikTok, "dancer"},
		{"tiktok url without at", "https://tiktok.com/dancer", PlatformTikTok, "dancer"},
		{"facebook page url", "https://facebook.com/somepage", PlatformFacebook, "somepage"},
		{"facebook profile.php keeps query", "https://facebook.com/profile.php?id=1234", PlatformFacebook, "profile.php?id=1234"},
		{"facebook share link drops query", "https://facebook.com/share/abc123?mibextid=xyz", PlatformFacebook, "share/abc123"},
		{"website kept verbatim", "https://example.com/page?q=1", PlatformWebsite, "https://example.com/page?q=1"},
		{"website bare domain", "example.com", PlatformWebsite, "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanUsername(tt.input, tt.platform); got != tt.want {
				t.Errorf("CleanUsername(%q, %q) = %q, want %q", tt.input, tt.platform, got, tt.want)
			}
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		input   string
		current Platform
		want    Platform
	}{
		{"https://instagram.com/u", PlatformWebsite, PlatformInstagram},
		{"https://facebook.com/u", PlatformInstagram, PlatformFacebook},
		{"https://twitter.com/u", PlatformInstagram, PlatformX},
		{"https://x.com/u", PlatformInstagram, PlatformX},
		{"https://tiktok.com/@u", PlatformInstagram, PlatformTikTok},
		{"plainhandle", PlatformFacebook, PlatformFacebook},
		{"https://example.com", PlatformWebsite, PlatformWebsite},
	}

	for _, tt := range tests {
		if got := DetectPlatform(tt.input, tt.current); got != tt.want {
			t.Errorf("DetectPlatform(%q, %q) = %q, want %q", tt.input, tt.current, got, tt.want)
		}
	}
}
