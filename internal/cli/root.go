package cli

import (
	"fmt"

	"github.com/BinadaPasandul/pulse/internal/storage"
)

// Context carries the process-wide store handle into every command. The
// store is constructed once in main and passed down explicitly; there is
// no package-level singleton.
type Context struct {
	Store storage.Provider
}

// ProgressBar renders a simple ASCII gauge for percentage displays.
func ProgressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// FormatGlasses renders a consumption/goal pair like "5/8 glasses".
func FormatGlasses(current, goal int) string {
	return fmt.Sprintf("%d/%d glasses", current, goal)
}
