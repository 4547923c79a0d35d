package env

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestConvertLevel(t *testing.T) {
	cases := []struct {
		in       int
		expected zerolog.Level
	}{
		{0, zerolog.Disabled},
		{1, zerolog.ErrorLevel},
		{2, zerolog.InfoLevel},
		{3, zerolog.DebugLevel},
		{4, zerolog.TraceLevel},
		{42, zerolog.InfoLevel},
	}
	for _, c := range cases {
		if got := convertLevel(c.in); got != c.expected {
			t.Errorf("convertLevel(%d) = %v, expected %v", c.in, got, c.expected)
		}
	}
}

func TestDefaults(t *testing.T) {
	// package init ran without RIDGEPLOT_* variables in the test environment
	if len(Port) < 2 {
		t.Errorf("port should default, got %q", Port)
	}
	if OutputDir == "" {
		t.Error("output dir should default to the working directory")
	}
	if StoreSize < 1 {
		t.Errorf("store size should default, got %d", StoreSize)
	}
}
