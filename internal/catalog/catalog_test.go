package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func f64(v float64) *float64 { return &v }

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	c, err := Load(filepath.Join(t.TempDir(), "nope", "catalog.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Epochs) != 0 {
		t.Errorf("missing file should load as empty catalog, got %d entries", len(c.Epochs))
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".tempo", "catalog.toml")

	c := &Catalog{}
	if err := c.Add(Entry{Name: "gps-epoch", Scale: "utc", Civil: "1980-01-06 00:00:00"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add(Entry{Name: "j2000", Scale: "jd", Value: f64(2451545.0)}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := Save(path, c); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Epochs) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(got.Epochs))
	}
	e, ok := got.Find("j2000")
	if !ok {
		t.Fatal("Find(j2000) missed")
	}
	if e.Scale != "jd" || e.Value == nil || *e.Value != 2451545.0 {
		t.Errorf("j2000 entry = %+v", e)
	}
}

func TestAddValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		entry Entry
	}{
		{"no name", Entry{Scale: "jd", Value: f64(1)}},
		{"no scale", Entry{Name: "x", Value: f64(1)}},
		{"neither value nor civil", Entry{Name: "x", Scale: "jd"}},
		{"both value and civil", Entry{Name: "x", Scale: "jd", Value: f64(1), Civil: "2000-01-01 00:00:00"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := &Catalog{}
			if err := c.Add(tc.entry); err == nil {
				t.Error("Add accepted an invalid entry")
			}
		})
	}
}

func TestAddDuplicate(t *testing.T) {
	t.Parallel()
	c := &Catalog{}
	e := Entry{Name: "x", Scale: "mjd", Value: f64(60200)}
	if err := c.Add(e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add(e); !errors.Is(err, ErrDuplicate) {
		t.Errorf("got %v, want ErrDuplicate", err)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	c := &Catalog{}
	_ = c.Add(Entry{Name: "x", Scale: "mjd", Value: f64(60200)})

	if err := c.Remove("x"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := c.Find("x"); ok {
		t.Error("entry still present after Remove")
	}
	if err := c.Remove("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoadRejectsMalformedEntries(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "catalog.toml")
	bad := "[[epoch]]\nname = \"x\"\nscale = \"jd\"\n" // no value, no civil
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted a malformed entry")
	}
}
