package utils

import (
	"os"
	"strings"
)

// ExpandHome expands a leading "~/" to the user's home directory. The path is
// returned unchanged when expansion is not possible.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return home + path[1:]
		}
	}
	return path
}
