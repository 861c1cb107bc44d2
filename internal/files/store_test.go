package files

import (
	"strings"
	"testing"
)

func TestStore_SaveListDelete(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := store.Save("b.txt", []byte("second")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save("a.txt", []byte("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	infos, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("expected 2 files, got %d", len(infos))
	}
	if infos[0].Name != "a.txt" || infos[1].Name != "b.txt" {
		t.Errorf("expected sorted names, got %v", infos)
	}
	if infos[0].SizeBytes != int64(len("first")) {
		t.Errorf("expected size %d, got %d", len("first"), infos[0].SizeBytes)
	}

	if !store.Exists("a.txt") {
		t.Error("expected a.txt to exist")
	}

	if err := store.Delete("a.txt"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Exists("a.txt") {
		t.Error("expected a.txt to be gone")
	}
}

func TestStore_DeleteMissing(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	err = store.Delete("missing.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	for _, name := range []string{"", "../escape.txt", "nested/file.txt", "back\\slash.txt"} {
		if err := store.Save(name, []byte("x")); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}
