package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validCatalog = `{"materials": [
	{"code": "PNL550", "name": "Painel Solar 550W", "unit": "un"},
	{"code": "CB6MM", "name": "Cabo Solar 6mm", "unit": "m"}
]}`

const validKits = `{"kits": [
	{"name": "Residencial 5kWp", "items": [
		{"code": "PNL550", "name": "Painel Solar 550W", "unit": "un", "qty": 9},
		{"code": "INV5K", "name": "Inversor 5kW", "unit": "un", "qty": 1}
	]}
]}`

func TestLoad(t *testing.T) {
	t.Run("loads catalog and kits", func(t *testing.T) {
		dir := t.TempDir()
		c, err := Load(
			writeFile(t, dir, "catalog.json", validCatalog),
			writeFile(t, dir, "kits.json", validKits),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Entries) != 2 {
			t.Errorf("expected 2 catalog entries, got %d", len(c.Entries))
		}
		if len(c.Kits) != 1 || len(c.Kits[0].Items) != 2 {
			t.Fatalf("unexpected kits: %+v", c.Kits)
		}
		if c.Kits[0].Items[0].Qty != 9 {
			t.Errorf("kit item order or qty lost: %+v", c.Kits[0].Items)
		}
	})

	t.Run("missing kits file is not an error", func(t *testing.T) {
		dir := t.TempDir()
		c, err := Load(
			writeFile(t, dir, "catalog.json", validCatalog),
			filepath.Join(dir, "absent-kits.json"),
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Kits != nil {
			t.Errorf("expected nil kits, got %+v", c.Kits)
		}
	})

	t.Run("missing catalog file is fatal", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(filepath.Join(dir, "absent.json"), filepath.Join(dir, "absent-kits.json"))
		if err == nil {
			t.Fatal("expected error for missing catalog")
		}
	})

	t.Run("rejects catalog entry without unit", func(t *testing.T) {
		dir := t.TempDir()
		bad := `{"materials": [{"code": "X", "name": "x"}]}`
		_, err := Load(writeFile(t, dir, "catalog.json", bad), filepath.Join(dir, "k.json"))
		if err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("rejects kit item with non-positive quantity", func(t *testing.T) {
		dir := t.TempDir()
		bad := `{"kits": [{"name": "K", "items": [{"name": "x", "unit": "un", "qty": 0}]}]}`
		_, err := Load(
			writeFile(t, dir, "catalog.json", validCatalog),
			writeFile(t, dir, "kits.json", bad),
		)
		if err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Load(writeFile(t, dir, "catalog.json", "{not json"), filepath.Join(dir, "k.json"))
		if err == nil {
			t.Fatal("expected parse error")
		}
	})
}
