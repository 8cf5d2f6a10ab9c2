package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY reports whether stdout is attached to a terminal. Prompts and
// the browse screen are skipped when it isn't (pipes, cron).
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// InitColor disables colored output for --no-color and for
// non-terminal stdout, so piped listings stay free of escape codes.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
	}
}
