package fallible

import "strings"

// parseOSRelease picks the distribution string out of os-release(5) data:
// PRETTY_NAME when present, NAME as the fallback.
func parseOSRelease(data string) (string, bool) {
	var fallback string

	for _, line := range strings.Split(data, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"`)

		switch strings.TrimSpace(key) {
		case "PRETTY_NAME":
			if value != "" {
				return value, true
			}
		case "NAME":
			fallback = value
		}
	}

	if fallback != "" {
		return fallback, true
	}
	return "", false
}

// parseKeyFile picks a single quoted key out of os-release style key=value
// data, e.g. PRETTY_HOSTNAME from /etc/machine-info.
func parseKeyFile(data, key string) (string, bool) {
	for _, line := range strings.Split(data, "\n") {
		k, value, found := strings.Cut(line, "=")
		if !found || strings.TrimSpace(k) != key {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value != "" {
			return value, true
		}
	}

	return "", false
}
