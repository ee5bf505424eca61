package material

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Store is the persistence contract behind a Registry. Load returns all
// entries in append order, duplicates included (the registry resolves
// last-wins); Append durably adds one entry.
type Store interface {
	Load() ([]Entry, error)
	Append(Entry) error
}

// storeHeader is written once when a FileStore creates its file.
const storeHeader = "# materials database\n# name | formula | density (g/cm^3)\n"

// FileStore persists entries to a line-oriented text file, one pipe-
// delimited entry per line. The path is explicit; there is no ambient
// default location.
type FileStore struct {
	Path string
}

var _ Store = FileStore{}

// NewFileStore returns a store over the given path. The file is created
// lazily on the first Append; a missing file loads as empty.
func NewFileStore(path string) FileStore {
	return FileStore{Path: path}
}

// Load reads every data line of the store file. Comment lines (leading
// '#') and blank lines are ignored. A missing file is an empty store.
func (s FileStore) Load() ([]Entry, error) {
	f, err := os.Open(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("material: load %s: %w", s.Path, err)
	}
	defer f.Close()

	var entries []Entry
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		e, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("material: %s line %d: %w", s.Path, line, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("material: load %s: %w", s.Path, err)
	}

	return entries, nil
}

// Append adds one entry to the end of the store file, writing the comment
// header first if the file did not exist yet.
func (s FileStore) Append(e Entry) error {
	_, statErr := os.Stat(s.Path)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(s.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("material: append %s: %w", s.Path, err)
	}
	defer f.Close()

	if fresh {
		if _, err = f.WriteString(storeHeader); err != nil {
			return fmt.Errorf("material: append %s: %w", s.Path, err)
		}
	}
	if _, err = fmt.Fprintf(f, "%s | %s | %g\n", e.Name, e.Formula, e.Density); err != nil {
		return fmt.Errorf("material: append %s: %w", s.Path, err)
	}

	return nil
}

// parseLine splits one "name | formula | density" data line.
func parseLine(text string) (Entry, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("%q: want 3 pipe-delimited fields, got %d: %w",
			text, len(parts), ErrBadStore)
	}

	name := strings.TrimSpace(parts[0])
	form := strings.TrimSpace(parts[1])
	density, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return Entry{}, fmt.Errorf("%q: bad density: %w", text, ErrBadStore)
	}
	if name == "" || form == "" {
		return Entry{}, fmt.Errorf("%q: empty name or formula: %w", text, ErrBadStore)
	}

	return Entry{Name: name, Formula: form, Density: density}, nil
}

// MemStore is an in-memory Store for tests and ephemeral registries.
// The zero value is usable.
type MemStore struct {
	entries []Entry
}

var _ Store = (*MemStore)(nil)

// Load returns the appended entries in order.
func (s *MemStore) Load() ([]Entry, error) {
	return append([]Entry(nil), s.entries...), nil
}

// Append records one entry.
func (s *MemStore) Append(e Entry) error {
	s.entries = append(s.entries, e)

	return nil
}
