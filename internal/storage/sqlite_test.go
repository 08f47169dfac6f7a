package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteAdapterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitalog.db")
	a, err := NewSQLiteAdapter(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer a.Close()

	if _, err := a.Read(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any write, got %v", err)
	}

	if err := a.Write([]byte(`{"v":1}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got, err := a.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(got) != `{"v":1}` {
		t.Errorf("unexpected content: %s", got)
	}

	// The write is an upsert under a fixed key.
	if err := a.Write([]byte(`{"v":2}`)); err != nil {
		t.Fatalf("second write failed: %v", err)
	}
	got, err = a.Read()
	if err != nil {
		t.Fatalf("second read failed: %v", err)
	}
	if string(got) != `{"v":2}` {
		t.Errorf("expected the second write to replace the first, got %s", got)
	}

	if a.Path() != path {
		t.Errorf("unexpected path: %q", a.Path())
	}
}

func TestSQLiteAdapterPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitalog.db")

	a, err := NewSQLiteAdapter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Write([]byte("payload")); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := NewSQLiteAdapter(path)
	if err != nil {
		t.Fatal(err)
	}
	defer b.Close()
	got, err := b.Read()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("expected persisted payload, got %s", got)
	}
}
