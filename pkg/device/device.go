// Package device classifies a browser user-agent string into the coarse
// buckets a page customization cares about: show the mobile menu or the
// desktop one, skip heavy animations on phones, ignore bots in counters.
//
// Matching is token-based and case-insensitive. The classification is
// deliberately coarse; anything needing exact model detection belongs in a
// full user-agent parser.
package device

import "strings"

// Type is the device category.
type Type string

const (
	TypeMobile  Type = "mobile"
	TypeTablet  Type = "tablet"
	TypeDesktop Type = "desktop"
	TypeBot     Type = "bot"
	TypeUnknown Type = "unknown"
)

// Device is the classification result for one user-agent string.
type Device struct {
	Type Type
	OS   string
}

func (d Device) Mobile() bool  { return d.Type == TypeMobile }
func (d Device) Tablet() bool  { return d.Type == TypeTablet }
func (d Device) Desktop() bool { return d.Type == TypeDesktop }
func (d Device) Bot() bool     { return d.Type == TypeBot }

// Touch reports whether the device likely has a touch-first interface.
func (d Device) Touch() bool {
	return d.Type == TypeMobile || d.Type == TypeTablet
}

var (
	botTokens     = []string{"bot", "spider", "crawler", "slurp", "lighthouse", "facebookexternalhit", "whatsapp", "telegram", "monitor", "scraper", "fetcher"}
	tabletTokens  = []string{"tablet", "kindle", "silk"}
	mobileTokens  = []string{"mobile", "iphone", "windows phone", "blackberry", "opera mini"}
	desktopTokens = []string{"windows", "macintosh", "mac os x", "x11", "linux", "cros"}
)

// Detect classifies a raw User-Agent header value. Empty input yields
// TypeUnknown.
func Detect(ua string) Device {
	lower := strings.ToLower(strings.TrimSpace(ua))
	if lower == "" {
		return Device{Type: TypeUnknown}
	}

	return Device{
		Type: detectType(lower),
		OS:   detectOS(lower),
	}
}

func detectType(lower string) Type {
	// iOS identifiers are unambiguous, check them before bot tokens so
	// in-app webviews with odd UA suffixes classify correctly.
	if strings.Contains(lower, "ipad") {
		return TypeTablet
	}
	if strings.Contains(lower, "iphone") {
		return TypeMobile
	}

	if containsAny(lower, botTokens) {
		return TypeBot
	}

	// Android phones carry "mobile"; Android tablets omit it.
	if strings.Contains(lower, "android") {
		if strings.Contains(lower, "mobile") {
			return TypeMobile
		}
		return TypeTablet
	}

	if containsAny(lower, tabletTokens) {
		return TypeTablet
	}
	if containsAny(lower, mobileTokens) {
		return TypeMobile
	}
	if containsAny(lower, desktopTokens) {
		return TypeDesktop
	}

	return TypeUnknown
}

func detectOS(lower string) string {
	switch {
	case strings.Contains(lower, "iphone"), strings.Contains(lower, "ipad"):
		return "ios"
	case strings.Contains(lower, "android"):
		return "android"
	case strings.Contains(lower, "windows"):
		return "windows"
	case strings.Contains(lower, "mac os x"), strings.Contains(lower, "macintosh"):
		return "macos"
	case strings.Contains(lower, "cros"):
		return "chromeos"
	case strings.Contains(lower, "linux"), strings.Contains(lower, "x11"):
		return "linux"
	default:
		return ""
	}
}

func containsAny(s string, tokens []string) bool {
	for _, token := range tokens {
		if strings.Contains(s, token) {
			return true
		}
	}
	return false
}
