package highscore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/vi-snake/game"
)

// TestFileStoreMissingFile verifies a missing file loads as a zero table
func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "high_scores.json"))

	table, err := fs.Load()
	if err != nil {
		t.Fatalf("Load on missing file returned error: %v", err)
	}
	if table != (Table{}) {
		t.Errorf("Expected zero table, got %+v", table)
	}
}

// TestFileStoreCorruptFile verifies malformed data falls back to zero with ErrCorrupt
func TestFileStoreCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"truncated", "{not json"},
		{"trailing garbage", `{"easy":5,"medium":7,"hard":9} garbage{{{`},
		{"two objects", `{"easy":5}{"hard":9}`},
		{"wrong type", `{"easy":"five"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_scores.json")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}

			table, err := NewFileStore(path).Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Expected ErrCorrupt, got %v", err)
			}
			if table != (Table{}) {
				t.Errorf("Expected zero table, got %+v", table)
			}
		})
	}
}

// TestFileStoreRoundTrip verifies saved values come back and the file has three fields
func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	fs := NewFileStore(path)

	in := Table{Easy: 30, Medium: 140, Hard: 0}
	if err := fs.Save(in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"easy":30,"medium":140,"hard":0}`; got != want {
		t.Errorf("File content = %s, want %s", got, want)
	}

	out, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out != in {
		t.Errorf("Loaded %+v, want %+v", out, in)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("Expected only the score file in dir, found %d entries", len(entries))
	}
}

// TestFileStorePartialFile verifies missing keys default to zero and negatives are clamped
func TestFileStorePartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "high_scores.json")
	if err := os.WriteFile(path, []byte(`{"hard":90,"easy":-5}`), 0644); err != nil {
		t.Fatal(err)
	}

	table, err := NewFileStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table != (Table{Hard: 90}) {
		t.Errorf("Loaded %+v, want {Hard:90}", table)
	}
}

// TestTableRecord verifies only strictly greater scores are recorded
func TestTableRecord(t *testing.T) {
	var table Table
	table.Set(game.Medium, 50)

	tests := []struct {
		score   int
		updated bool
		best    int
	}{
		{40, false, 50},
		{50, false, 50},
		{60, true, 60},
	}

	for _, tt := range tests {
		if got := table.Record(game.Medium, tt.score); got != tt.updated {
			t.Errorf("Record(%d) = %v, want %v", tt.score, got, tt.updated)
		}
		if table.Get(game.Medium) != tt.best {
			t.Errorf("Best after %d = %d, want %d", tt.score, table.Get(game.Medium), tt.best)
		}
	}

	if table.Get(game.Easy) != 0 || table.Get(game.Hard) != 0 {
		t.Errorf("Other difficulties changed: %+v", table)
	}
}
