package storage

import (
	"strings"
	"testing"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	s := NewMemoryStore()

	info, err := s.Save("circuits.tsv", strings.NewReader("WL-1\tA\tWL\n"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if info.ID == "" {
		t.Fatal("expected an ID")
	}
	if info.Size != 10 {
		t.Errorf("expected size 10, got %d", info.Size)
	}

	got, err := s.Get(info.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Name != "circuits.tsv" {
		t.Errorf("expected name circuits.tsv, got %s", got.Name)
	}

	content, err := s.GetContent(info.ID)
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if string(content) != "WL-1\tA\tWL\n" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestMemoryStoreListLimit(t *testing.T) {
	s := NewMemoryStore()
	for i := 0; i < 5; i++ {
		if _, err := s.SaveBytes("f", []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	list, err := s.List(3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("expected 3 files, got %d", len(list))
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	info, _ := s.SaveBytes("f", []byte("x"))

	if err := s.Delete(info.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get(info.ID); err == nil {
		t.Error("expected Get to fail after delete")
	}
	if _, err := s.GetContent(info.ID); err == nil {
		t.Error("expected GetContent to fail after delete")
	}
	if err := s.Delete(info.ID); err == nil {
		t.Error("expected second delete to fail")
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get("missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
	if _, err := s.GetContent("missing"); err == nil {
		t.Error("expected error for unknown ID")
	}
}
