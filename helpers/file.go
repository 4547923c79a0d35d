package helpers

import (
	"os"
	"path/filepath"
	"strings"
)

// relative paths are resolved against RIDGEPLOT_ROOT, used by tests run from package folders
func root() string {
	return GetenvOr("RIDGEPLOT_ROOT", ".")
}

func Open(name string) (*os.File, error) {
	if filepath.IsAbs(name) {
		return os.Open(name)
	}
	return os.Open(filepath.Join(root(), name))
}

func EnsureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}

// Format returns the lowercased extension of a file name without its dot ("png", "csv"...)
func Format(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
