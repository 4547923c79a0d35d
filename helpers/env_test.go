package helpers

import "testing"

func TestGetenv(t *testing.T) {
	t.Setenv("RIDGEPLOT_TEST_VALUE", "value")
	t.Setenv("RIDGEPLOT_TEST_BOOL", "TRUE")

	if got := Getenv("RIDGEPLOT_TEST_VALUE"); got != "value" {
		t.Errorf("Getenv = %q, expected %q", got, "value")
	}
	if got := GetenvOr("RIDGEPLOT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetenvOr = %q, expected fallback", got)
	}
	if !GetenvBool("RIDGEPLOT_TEST_BOOL") {
		t.Error("GetenvBool should be case insensitive")
	}
	if GetenvBool("RIDGEPLOT_TEST_MISSING") {
		t.Error("GetenvBool should default to false")
	}
}
