package utils

import (
	"regexp"
	"testing"
)

func TestGenerateUniqueCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^PSY-\d+-[0-9A-Z]{6}$`)
	for i := 0; i < 20; i++ {
		code := GenerateUniqueCode("PSY")
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match expected format", code)
		}
	}
}

func TestGenerateUniqueCodeUnlikelyCollision(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateUniqueCode("PSY")
		if seen[code] {
			t.Fatalf("duplicate code generated: %q", code)
		}
		seen[code] = true
	}
}
