package dictionary

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/tuidrill/internal/vocab"
)

// Catalog lists the dictionary files of a directory. Files are decoded again on
// Load so edits made while the program runs are picked up.
type Catalog struct {
	dir     string
	entries []vocab.Entry
	broken  map[string]error
}

// Scan enumerates *.toml files in dir. A missing directory yields an empty
// catalog; files that fail to decode stay listed under their file stem.
func Scan(dir string) (*Catalog, error) {
	c := &Catalog{dir: dir, broken: map[string]error{}}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, &LoadError{Path: dir, Err: err}
	}
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), Ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		set, _, err := LoadFile(path)
		if err != nil {
			c.broken[path] = err
		} else {
			name = set.Name
		}
		c.entries = append(c.entries, vocab.Entry{ID: path, Name: name})
	}
	sort.SliceStable(c.entries, func(i, j int) bool {
		return c.entries[i].ID < c.entries[j].ID
	})
	return c, nil
}

// Dir returns the scanned directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Entries implements app.Catalog.
func (c *Catalog) Entries() []vocab.Entry {
	return append([]vocab.Entry(nil), c.entries...)
}

// Load implements app.Catalog.
func (c *Catalog) Load(id string) (vocab.Set, error) {
	set, _, err := LoadFile(id)
	return set, err
}

// Broken returns the files that failed to decode during Scan, keyed by path.
func (c *Catalog) Broken() map[string]error {
	return c.broken
}

// Usable returns the entries that decoded cleanly during Scan.
func (c *Catalog) Usable() []vocab.Entry {
	return lo.Filter(c.entries, func(e vocab.Entry, _ int) bool {
		_, bad := c.broken[e.ID]
		return !bad
	})
}
