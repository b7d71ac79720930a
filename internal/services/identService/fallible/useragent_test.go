package fallible

import (
	"testing"

	"github.com/redjax/ident/internal/services/identService/taxonomy"
)

const (
	uaChromeLinux   = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	uaEdgeWindows   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36 Edg/125.0.2535.51"
	uaOperaWindows  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36 OPR/110.0.0.0"
	uaSafariMac     = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4 Safari/605.1.15"
	uaFirefoxLinux  = "Mozilla/5.0 (X11; Linux x86_64; rv:126.0) Gecko/20100101 Firefox/126.0"
	uaSamsungMobile = "Mozilla/5.0 (Linux; Android 14; SM-S918B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/24.0 Chrome/117.0.0.0 Mobile Safari/537.36"
	uaChromeOS      = "Mozilla/5.0 (X11; CrOS x86_64 14541.0.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
)

func TestBrowserFromUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ua          string
		wantName    string
		wantVersion string
	}{
		// Chrome carries a Safari token; the Chrome rule must win.
		{name: "chrome not safari", ua: uaChromeLinux, wantName: "Chrome", wantVersion: "125.0.0.0"},
		// Edge carries Chrome and Safari tokens; the Edg rule must win.
		{name: "edge not chrome", ua: uaEdgeWindows, wantName: "Edge", wantVersion: "125.0.2535.51"},
		{name: "opera not chrome", ua: uaOperaWindows, wantName: "Opera", wantVersion: "110.0.0.0"},
		// Safari's real version lives in the Version token.
		{name: "safari version token", ua: uaSafariMac, wantName: "Safari", wantVersion: "17.4"},
		{name: "firefox", ua: uaFirefoxLinux, wantName: "Firefox", wantVersion: "126.0"},
		{name: "samsung not chrome", ua: uaSamsungMobile, wantName: "Samsung Browser", wantVersion: "24.0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, version, ok := browserFromUserAgent(tt.ua)
			if !ok {
				t.Fatal("browserFromUserAgent() ok = false")
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if version != tt.wantVersion {
				t.Errorf("version = %q, want %q", version, tt.wantVersion)
			}
		})
	}

	if _, _, ok := browserFromUserAgent("curl/8.6.0"); ok {
		t.Error("browserFromUserAgent(curl) ok = true, want false")
	}
}

func TestDistroFromUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ua     string
		want   string
		wantOK bool
	}{
		{name: "windows 10", ua: uaEdgeWindows, want: "Windows 10", wantOK: true},
		{name: "windows 7", ua: "Mozilla/5.0 (Windows NT 6.1; Win64; x64) Chrome/109.0.0.0", want: "Windows 7", wantOK: true},
		{name: "unmapped nt version", ua: "Mozilla/5.0 (Windows NT 11.0) Chrome/1.0", want: "Windows NT 11.0", wantOK: true},
		{name: "mac os version", ua: uaSafariMac, want: "Mac OS 10.15.7", wantOK: true},
		{name: "android", ua: uaSamsungMobile, want: "Android", wantOK: true},
		{name: "chrome os", ua: uaChromeOS, want: "Chrome OS", wantOK: true},
		{name: "linux", ua: uaChromeLinux, want: "Linux", wantOK: true},
		{name: "no section", ua: "curl/8.6.0", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := distroFromUserAgent(tt.ua)
			if ok != tt.wantOK {
				t.Fatalf("distroFromUserAgent() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("distroFromUserAgent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlatformFromUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ua   string
		want taxonomy.Platform
	}{
		{name: "windows", ua: uaEdgeWindows, want: taxonomy.PlatformWindows},
		{name: "mac", ua: uaSafariMac, want: taxonomy.PlatformMacOS},
		{name: "iphone", ua: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_4 like Mac OS X) Version/17.4 Mobile/15E148 Safari/604.1", want: taxonomy.PlatformMacOS},
		{name: "android is linux", ua: uaSamsungMobile, want: taxonomy.PlatformLinux},
		{name: "chrome os is linux", ua: uaChromeOS, want: taxonomy.PlatformLinux},
		{name: "linux", ua: uaChromeLinux, want: taxonomy.PlatformLinux},
		{name: "freebsd", ua: "Mozilla/5.0 (X11; FreeBSD amd64; rv:126.0) Gecko/20100101 Firefox/126.0", want: taxonomy.PlatformBSD},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := platformFromUserAgent(tt.ua); got != tt.want {
				t.Errorf("platformFromUserAgent() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := platformFromUserAgent("curl/8.6.0"); !got.IsUnknown() {
		t.Errorf("platformFromUserAgent(curl) = %v, want unknown", got)
	}
}

func TestUASystemSection(t *testing.T) {
	t.Parallel()

	section, ok := uaSystemSection(uaEdgeWindows)
	if !ok {
		t.Fatal("uaSystemSection() ok = false")
	}
	if want := "Windows NT 10.0; Win64; x64"; section != want {
		t.Errorf("uaSystemSection() = %q, want %q", section, want)
	}
}
