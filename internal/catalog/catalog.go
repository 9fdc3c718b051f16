// Package catalog stores named epochs in a TOML file so CLI invocations
// can refer to well-known instants by name instead of raw values.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// DefaultPath is the conventional location for the epoch catalog.
const DefaultPath = ".tempo/catalog.toml"

// ErrDuplicate is returned when adding an entry whose name is taken.
var ErrDuplicate = errors.New("catalog entry already exists")

// ErrNotFound is returned when a named entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")

// Entry names one instant. Exactly one of Value and Civil is set: Value
// is a raw number on the entry's scale, Civil is a breakdown in
// "YYYY-MM-DD HH:MM:SS" form.
type Entry struct {
	Name  string   `toml:"name"`
	Scale string   `toml:"scale"`
	Value *float64 `toml:"value,omitempty"`
	Civil string   `toml:"civil,omitempty"`
}

// validate rejects entries that are unresolvable by construction.
func (e Entry) validate() error {
	if e.Name == "" {
		return errors.New("catalog entry has no name")
	}
	if e.Scale == "" {
		return fmt.Errorf("catalog entry %q has no scale", e.Name)
	}
	if (e.Value == nil) == (e.Civil == "") {
		return fmt.Errorf("catalog entry %q needs exactly one of value and civil", e.Name)
	}
	return nil
}

// Catalog is the full set of named epochs.
type Catalog struct {
	Epochs []Entry `toml:"epoch"`
}

// Load reads a catalog from the given path. If the file does not exist,
// it returns an empty catalog and no error, allowing callers to proceed.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	for _, e := range c.Epochs {
		if err := e.validate(); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Save writes the catalog to the given path, creating parent directories
// as needed.
func Save(path string, c *Catalog) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

// Find returns the entry with the given name.
func (c *Catalog) Find(name string) (Entry, bool) {
	for _, e := range c.Epochs {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Add appends a validated entry, rejecting duplicate names.
func (c *Catalog) Add(e Entry) error {
	if err := e.validate(); err != nil {
		return err
	}
	if _, ok := c.Find(e.Name); ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, e.Name)
	}
	c.Epochs = append(c.Epochs, e)
	return nil
}

// Remove deletes the entry with the given name.
func (c *Catalog) Remove(name string) error {
	for i, e := range c.Epochs {
		if e.Name == name {
			c.Epochs = append(c.Epochs[:i], c.Epochs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}
