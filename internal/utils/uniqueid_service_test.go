package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id, err := UniqueIDSvc.GenerateID("m")
	if err != nil {
		t.Fatalf("GenerateID returned error: %v", err)
	}
	if len(id) != 12 {
		t.Errorf("id length = %d, want 12", len(id))
	}
	if !strings.HasPrefix(id, "M") {
		t.Errorf("id = %q, want M prefix", id)
	}
	if id != strings.ToUpper(id) {
		t.Errorf("id = %q, want uppercase", id)
	}
	for _, r := range id[1:3] {
		if r < '0' || r > '9' {
			t.Errorf("id = %q, chars 2-3 must be digits", id)
		}
	}
}

func TestGenerateIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateUniqueID("g")
		if err != nil {
			t.Fatalf("GenerateUniqueID returned error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d generations", id, i)
		}
		seen[id] = true
	}
}
