package utils

import (
	"fmt"
)

var byteUnits = []string{"KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// BytesToHumanReadable renders a byte count with a binary (1024-based) unit suffix.
func BytesToHumanReadable(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	if exp >= len(byteUnits) {
		return fmt.Sprintf("%.1f B", float64(bytes))
	}

	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), byteUnits[exp])
}
