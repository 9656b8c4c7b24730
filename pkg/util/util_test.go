package util

import (
	"strings"
	"testing"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if len(id) != 32 || strings.Contains(id, "-") {
		t.Fatalf("unexpected id: %q", id)
	}
	if !IsValidRequestID(id) {
		t.Fatalf("generated id should be valid: %q", id)
	}
	if id == GenerateRequestID() {
		t.Fatalf("ids should differ")
	}
}

func TestIsValidRequestID(t *testing.T) {
	for _, id := range []string{"", "abc", "<script>", strings.Repeat("a", 64)} {
		if IsValidRequestID(id) {
			t.Fatalf("expected %q to be rejected", id)
		}
	}
}
