package rendering

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ghuser/solarbom/services/materials/domain/models"
)

func testInput() RenderInput {
	return RenderInput{
		ListID:     42,
		Client:     "Dona Maria",
		Technician: "Carlos Andrade",
		Items: []models.LineItem{
			{Code: "PNL550", Name: "Painel Solar 550W", Unit: "un", Qty: 6},
			{Code: "CB6MM", Name: "Cabo Solar 6mm²", Unit: "m", Qty: 2.5},
		},
		CompanyName: "Sol Forte Energia",
	}
}

func TestDocumentRenderer_Render(t *testing.T) {
	r, err := NewDocumentRenderer(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("writes a PDF file", func(t *testing.T) {
		path, err := r.Render(ctx, testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !filepath.IsAbs(path) {
			t.Errorf("expected absolute path, got %q", path)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("document not written: %v", err)
		}
		if info.Size() == 0 {
			t.Fatal("document is empty")
		}
	})

	t.Run("filename carries the record id", func(t *testing.T) {
		path, err := r.Render(ctx, testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		base := filepath.Base(path)
		if !strings.HasPrefix(base, "lista_42_") || !strings.HasSuffix(base, ".pdf") {
			t.Errorf("unexpected filename %q", base)
		}
	})

	t.Run("repeated renders never overwrite", func(t *testing.T) {
		first, err := r.Render(ctx, testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := r.Render(ctx, testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first == second {
			t.Fatalf("expected distinct paths, both %q", first)
		}
		for _, p := range []string{first, second} {
			if _, err := os.Stat(p); err != nil {
				t.Errorf("missing document %q: %v", p, err)
			}
		}
	})

	t.Run("absent logo path is skipped silently", func(t *testing.T) {
		in := testInput()
		in.LogoPath = filepath.Join(t.TempDir(), "no-such-logo.png")
		if _, err := r.Render(ctx, in); err != nil {
			t.Fatalf("expected missing logo to be skipped, got %v", err)
		}
	})

	t.Run("empty description does not fail the render", func(t *testing.T) {
		in := testInput()
		in.Items = []models.LineItem{{Code: "X1", Unit: "un", Qty: 1}}
		if _, err := r.Render(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled context aborts before writing", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := r.Render(cancelled, testInput()); err == nil {
			t.Fatal("expected context error")
		}
	})
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"whole float prints without decimals", 6.0, "6"},
		{"fractional float uses decimal comma", 2.5, "2,5"},
		{"small fraction", 0.25, "0,25"},
		{"int", 3, "3"},
		{"numeric string", "4.5", "4,5"},
		{"whole numeric string", "12", "12"},
		{"non-numeric string falls back to raw", "bad", "bad"},
		{"json number", json.Number("7.75"), "7,75"},
		{"malformed json number falls back to raw", json.Number("7,75"), "7,75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatQuantity(tt.in); got != tt.want {
				t.Errorf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
