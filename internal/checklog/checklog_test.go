package checklog

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "checks.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRecordAndRecent(t *testing.T) {
	db := openTestDB(t)

	checks := []struct{ id, kind, outcome, location string }{
		{"10.1000/182", "doi", "valid", ""},
		{"10.5555/nope", "doi", "invalid", ""},
		{"20.500.11850/1", "hdl", "valid", "https://example.org/thesis"},
	}
	for _, c := range checks {
		if err := db.Record(c.id, c.kind, c.outcome, c.location); err != nil {
			t.Fatalf("Record(%q) error = %v", c.id, err)
		}
	}

	entries, err := db.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Recent() returned %d entries, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Identifier != "20.500.11850/1" {
		t.Errorf("entries[0] = %q, want the handle check", entries[0].Identifier)
	}
	if entries[0].Location != "https://example.org/thesis" {
		t.Errorf("location = %q", entries[0].Location)
	}
	if entries[0].CheckedAt == "" {
		t.Error("CheckedAt is empty")
	}

	// The limit applies.
	entries, err = db.Recent(2)
	if err != nil {
		t.Fatalf("Recent(2) error = %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Recent(2) returned %d entries", len(entries))
	}
}

func TestSummary(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		if err := db.Record("10.1000/a", "doi", "valid", ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := db.Record("10.5555/b", "doi", "invalid", ""); err != nil {
		t.Fatal(err)
	}

	counts, err := db.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if counts["valid"] != 3 || counts["invalid"] != 1 {
		t.Errorf("Summary() = %v, want valid:3 invalid:1", counts)
	}
}

func TestOpenCreatesSchemaOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checks.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := db.Record("10.1000/182", "doi", "valid", ""); err != nil {
		t.Fatal(err)
	}
	db.Close()

	db, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer db.Close()
	entries, err := db.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("entries after reopen = %d, want 1", len(entries))
	}
}
