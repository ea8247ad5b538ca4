package model

import "strings"

// CleanUsername reduces user input to a bare handle for the given platform.
// Website input is kept verbatim. Pasted profile URLs are stripped down to
// the handle segment; facebook share and profile.php links keep their
// meaningful tail because the path alone identifies the profile there.
func CleanUsername(input string, platform Platform) string {
	clean := strings.TrimSpace(input)
	if platform == PlatformWebsite {
		return clean
	}

	if strings.HasPrefix(clean, "http") {
		if platform == PlatformFacebook && strings.Contains(clean, "facebook.com/") {
			afterDomain := splitAfter(clean, "facebook.com/")
			if strings.HasPrefix(afterDomain, "profile.php") {
				// Query params carry the profile id here.
				return afterDomain
			}
			if strings.HasPrefix(afterDomain, "share") {
				return strings.SplitN(afterDomain, "?", 2)[0]
			}
		}

		switch {
		case strings.Contains(clean, "instagram.com/"):
			clean = firstSegment(splitAfter(clean, "instagram.com/"))
		case strings.Contains(clean, "facebook.com/"):
			clean = firstSegment(splitAfter(clean, "facebook.com/"))
		case strings.Contains(clean, "twitter.com/"):
			clean = firstSegment(splitAfter(clean, "twitter.com/"))
		case strings.Contains(clean, "x.com/"):
			clean = firstSegment(splitAfter(clean, "x.com/"))
		case strings.Contains(clean, "tiktok.com/@"):
			clean = firstSegment(splitAfter(clean, "tiktok.com/@"))
		case strings.Contains(clean, "tiktok.com/"):
			clean = firstSegment(splitAfter(clean, "tiktok.com/"))
		}
	}

	return strings.ReplaceAll(clean, "@", "")
}

// DetectPlatform guesses the platform from a pasted URL. It returns the
// current platform unchanged when the input gives no hint.
func DetectPlatform(input string, current Platform) Platform {
	switch {
	case strings.Contains(input, "instagram.com"):
		return PlatformInstagram
	case strings.Contains(input, "facebook.com"):
		return PlatformFacebook
	case strings.Contains(input, "twitter.com"), strings.Contains(input, "x.com"):
		return PlatformX
	case strings.Contains(input, "tiktok.com"):
		return PlatformTikTok
	}
	return current
}

func splitAfter(s, sep string) string {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

func firstSegment(s string) string {
	s = strings.SplitN(s, "/", 2)[0]
	return strings.SplitN(s, "?", 2)[0]
}
