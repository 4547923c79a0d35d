package helpers

import (
	"os"
	"strings"
)

// function "synonym" whose interest is only to be sure env init has been called first
func Getenv(key string) string {
	return os.Getenv(key)
}

func GetenvOr(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func GetenvBool(key string) bool {
	return strings.ToLower(os.Getenv(key)) == "true"
}
