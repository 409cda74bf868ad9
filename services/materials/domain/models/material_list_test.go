package models

import (
	"strings"
	"testing"
	"time"
)

func validItems() []LineItem {
	return []LineItem{{Code: "PNL550", Name: "Painel Solar 550W", Unit: "un", Qty: 3}}
}

func TestNewMaterialList(t *testing.T) {
	t.Run("builds an unsaved list", func(t *testing.T) {
		before := time.Now().UTC()
		list, err := NewMaterialList("Dona Maria", "Carlos", validItems())
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.ID != 0 {
			t.Fatalf("expected zero ID before insert, got %d", list.ID)
		}
		if list.DocumentPath != "" {
			t.Fatalf("expected empty document path, got %q", list.DocumentPath)
		}
		if list.CreatedAt.Before(before) || list.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", list.CreatedAt, before, after)
		}
	})

	t.Run("trims client and technician", func(t *testing.T) {
		list, err := NewMaterialList("  Dona Maria  ", "\tCarlos\n", validItems())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Client != "Dona Maria" || list.Technician != "Carlos" {
			t.Fatalf("expected trimmed names, got %q / %q", list.Client, list.Technician)
		}
	})

	t.Run("requires client", func(t *testing.T) {
		if _, err := NewMaterialList("   ", "Carlos", validItems()); err == nil {
			t.Fatal("expected error for blank client")
		}
	})

	t.Run("requires technician", func(t *testing.T) {
		if _, err := NewMaterialList("Dona Maria", "", validItems()); err == nil {
			t.Fatal("expected error for blank technician")
		}
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := NewMaterialList("Dona Maria", "Carlos", nil)
		if err == nil || !strings.Contains(err.Error(), "at least one item") {
			t.Fatalf("expected non-empty items error, got %v", err)
		}
	})

	t.Run("rejects smuggled non-positive quantities", func(t *testing.T) {
		items := []LineItem{{Qty: 2}, {Qty: 0}}
		if _, err := NewMaterialList("Dona Maria", "Carlos", items); err == nil {
			t.Fatal("expected error for non-positive quantity")
		}
	})
}
