package deck

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

const basicsDeck = `language: python
combining: false
cards:
  - id: assign
    expected: "x = 1"
    typed: "x = 1"
  - expected: "print(x)"
    typed: "print(y)"
    language: js
  - expected: "y = 2"
    combining: true
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// TestParse tests decoding decks and applying deck defaults.
func TestParse(t *testing.T) {
	t.Parallel()

	d, err := Parse([]byte(basicsDeck), "basics.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Cards) != 3 {
		t.Fatalf("got %d cards, expected 3", len(d.Cards))
	}

	t.Run("keeps explicit ids and fills the rest", func(t *testing.T) {
		t.Parallel()
		want := []string{"assign", "basics.yaml#2", "basics.yaml#3"}
		for i, card := range d.Cards {
			if card.ID != want[i] {
				t.Errorf("card %d: got id %q, expected %q", i, card.ID, want[i])
			}
		}
	})

	t.Run("applies the deck language", func(t *testing.T) {
		t.Parallel()
		want := []string{"python", "js", "python"}
		for i, card := range d.Cards {
			if card.Language != want[i] {
				t.Errorf("card %d: got language %q, expected %q", i, card.Language, want[i])
			}
		}
	})

	t.Run("applies the deck combining setting", func(t *testing.T) {
		t.Parallel()
		want := []bool{false, false, true}
		for i, card := range d.Cards {
			if card.Combining == nil {
				t.Fatalf("card %d: combining not set", i)
			}
			if *card.Combining != want[i] {
				t.Errorf("card %d: got combining %v, expected %v", i, *card.Combining, want[i])
			}
		}
	})

	t.Run("missing typed answer is blank", func(t *testing.T) {
		t.Parallel()
		if d.Cards[2].Typed != "" {
			t.Errorf("got %q, expected empty", d.Cards[2].Typed)
		}
	})
}

// TestParseErrors tests invalid decks.
func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "no cards", data: "language: python\n", wantErr: ErrNoCards},
		{name: "empty card list", data: "cards: []\n", wantErr: ErrNoCards},
		{
			name:    "duplicate ids",
			data:    "cards:\n  - id: a\n    expected: x\n  - id: a\n    expected: y\n",
			wantErr: ErrDuplicateCardID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.data), "deck.yaml")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		if _, err := Parse([]byte("cards: [\n"), "deck.yaml"); err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}

// TestLoad tests reading a deck from disk.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "basics.yaml")
	writeFile(t, path, basicsDeck)

	d, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Path != path {
		t.Errorf("got path %q, expected %q", d.Path, path)
	}
	if d.Language != "python" {
		t.Errorf("got language %q", d.Language)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

// TestDiscover tests expanding files, directories and globs.
func TestDiscover(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "nested", "b.yml")
	c := filepath.Join(dir, "nested", "deeper", "c.yaml")
	writeFile(t, a, basicsDeck)
	writeFile(t, b, basicsDeck)
	writeFile(t, c, basicsDeck)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a deck")

	t.Run("directory is searched recursively", func(t *testing.T) {
		t.Parallel()
		got, err := Discover([]string{dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := []string{a, c, b}; !slices.Equal(got, sortedCopy(want)) {
			t.Errorf("got %v, expected %v", got, sortedCopy(want))
		}
	})

	t.Run("glob pattern", func(t *testing.T) {
		t.Parallel()
		got, err := Discover([]string{filepath.Join(dir, "**", "*.yaml")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := sortedCopy([]string{a, c}); !slices.Equal(got, want) {
			t.Errorf("got %v, expected %v", got, want)
		}
	})

	t.Run("duplicates are removed", func(t *testing.T) {
		t.Parallel()
		got, err := Discover([]string{a, a, dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("got %v, expected 3 files", got)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Parallel()
		_, err := Discover([]string{filepath.Join(dir, "*.json")})
		if !errors.Is(err, ErrNoDecks) {
			t.Errorf("expected ErrNoDecks, got %v", err)
		}
	})
}

// TestLoadAll tests loading every discovered deck.
func TestLoadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.yaml"), basicsDeck)
	writeFile(t, filepath.Join(dir, "two.yaml"), "cards:\n  - expected: z\n    typed: z\n")

	decks, err := LoadAll([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("got %d decks, expected 2", len(decks))
	}

	cards := Cards(decks)
	if len(cards) != 4 {
		t.Fatalf("got %d cards, expected 4", len(cards))
	}
	if cards[3].ID != "two.yaml#1" {
		t.Errorf("got id %q", cards[3].ID)
	}

	writeFile(t, filepath.Join(dir, "broken.yaml"), "cards: []\n")
	if _, err := LoadAll([]string{dir}); !errors.Is(err, ErrNoCards) {
		t.Errorf("expected ErrNoCards, got %v", err)
	}
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}
