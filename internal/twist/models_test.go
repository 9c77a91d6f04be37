package twist

import (
	"encoding/json"
	"testing"
)

func TestFlag_UnmarshalBooleans(t *testing.T) {
	var thread Thread
	data := `{"id": 1, "is_archived": true, "starred": false}`
	if err := json.Unmarshal([]byte(data), &thread); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bool(thread.IsArchived) {
		t.Error("Expected is_archived=true")
	}
	if bool(thread.Starred) {
		t.Error("Expected starred=false")
	}
}

func TestFlag_UnmarshalIntegers(t *testing.T) {
	// Some API revisions emit 0/1 instead of booleans
	var thread Thread
	data := `{"id": 1, "is_archived": 1, "starred": 0, "pinned": null}`
	if err := json.Unmarshal([]byte(data), &thread); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !bool(thread.IsArchived) {
		t.Error("Expected is_archived=true for 1")
	}
	if bool(thread.Starred) {
		t.Error("Expected starred=false for 0")
	}
	if bool(thread.Pinned) {
		t.Error("Expected pinned=false for null")
	}
}

func TestFlag_UnmarshalInvalid(t *testing.T) {
	var f Flag
	if err := json.Unmarshal([]byte(`"yes"`), &f); err == nil {
		t.Error("Expected error for non-boolean flag value")
	}
}
