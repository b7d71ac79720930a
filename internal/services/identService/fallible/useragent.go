package fallible

import (
	"strings"

	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

// User-Agent parsing for the web strategy. Browsers impersonate each other:
// Chrome ships a "Safari" token, Edge and Opera ship "Chrome" and "Safari"
// tokens. The rules below check the most specific impostor tokens first so
// an engine-sharing browser is not misreported as the browser it imitates.

var browserRules = []struct {
	token string
	name  string
}{
	{"Edg/", "Edge"},
	{"Edge/", "Edge"},
	{"OPR/", "Opera"},
	{"Opera/", "Opera"},
	{"SamsungBrowser/", "Samsung Browser"},
	{"Firefox/", "Firefox"},
	{"Chromium/", "Chromium"},
	{"Chrome/", "Chrome"},
	{"Safari/", "Safari"},
}

// browserFromUserAgent returns the canonical browser name and its version
// token.
func browserFromUserAgent(ua string) (name, version string, ok bool) {
	for _, rule := range browserRules {
		i := strings.Index(ua, rule.token)
		if i < 0 {
			continue
		}

		version = ua[i+len(rule.token):]
		if j := strings.IndexByte(version, ' '); j >= 0 {
			version = version[:j]
		}

		if rule.name == "Safari" {
			// Safari reports its real version in a separate token.
			if k := strings.Index(ua, "Version/"); k >= 0 {
				version = ua[k+len("Version/"):]
				if j := strings.IndexByte(version, ' '); j >= 0 {
					version = version[:j]
				}
			}
		}

		return rule.name, version, true
	}

	return "", "", false
}

// uaSystemSection extracts the parenthesized system information section of
// a User-Agent, e.g. "Windows NT 10.0; Win64; x64".
func uaSystemSection(ua string) (string, bool) {
	begin := strings.IndexByte(ua, '(')
	if begin < 0 {
		return "", false
	}
	end := strings.IndexByte(ua[begin:], ')')
	if end < 0 {
		return "", false
	}
	return ua[begin+1 : begin+end], true
}

// windowsVersions maps NT kernel versions to marketing names.
var windowsVersions = map[string]string{
	"10.0": "10",
	"6.3":  "8.1",
	"6.2":  "8",
	"6.1":  "7",
	"6.0":  "Vista",
	"5.1":  "XP",
}

// distroFromUserAgent derives an OS distribution string from the system
// section of a User-Agent.
func distroFromUserAgent(ua string) (string, bool) {
	section, ok := uaSystemSection(ua)
	if !ok {
		return "", false
	}

	switch {
	case strings.Contains(section, "Windows NT "):
		rest := section[strings.Index(section, "Windows NT ")+len("Windows NT "):]
		if i := strings.IndexAny(rest, ";)"); i >= 0 {
			rest = rest[:i]
		}
		if name, ok := windowsVersions[strings.TrimSpace(rest)]; ok {
			return "Windows " + name, true
		}
		return "Windows NT " + strings.TrimSpace(rest), true

	case strings.Contains(section, "Android"):
		return "Android", true

	case strings.Contains(section, "CrOS"):
		return "Chrome OS", true

	case strings.Contains(section, "Mac OS X"):
		rest := section[strings.Index(section, "Mac OS X")+len("Mac OS X"):]
		rest = strings.TrimSpace(strings.TrimLeft(rest, " _"))
		if i := strings.IndexAny(rest, ";)"); i >= 0 {
			rest = rest[:i]
		}
		if rest == "" {
			return "Mac OS", true
		}
		return "Mac OS " + strings.ReplaceAll(rest, "_", "."), true

	case strings.Contains(section, "Linux"):
		return "Linux", true
	}

	return "", false
}

// platformFromUserAgent classifies the host OS family behind the browser.
func platformFromUserAgent(ua string) taxonomy.Platform {
	section, ok := uaSystemSection(ua)
	if !ok {
		return taxonomy.UnknownPlatform("Unknown")
	}

	switch {
	case strings.Contains(section, "Win"):
		return taxonomy.PlatformWindows
	case strings.Contains(section, "Mac") ||
		strings.Contains(section, "iPhone") ||
		strings.Contains(section, "iPad"):
		return taxonomy.PlatformMacOS
	case strings.Contains(section, "BSD"):
		return taxonomy.PlatformBSD
	case strings.Contains(section, "Android"),
		strings.Contains(section, "CrOS"),
		strings.Contains(section, "Linux"):
		return taxonomy.PlatformLinux
	default:
		return taxonomy.UnknownPlatform(section)
	}
}
