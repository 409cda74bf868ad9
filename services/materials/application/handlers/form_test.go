package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReadOrderedForm(t *testing.T) {
	t.Run("preserves wire order", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/lists",
			strings.NewReader("client=Dona+Maria&qty_2=1&qty_1=3&technician=Carlos"))
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantNames := []string{"client", "qty_2", "qty_1", "technician"}
		if len(fields) != len(wantNames) {
			t.Fatalf("expected %d fields, got %d", len(wantNames), len(fields))
		}
		for i, n := range wantNames {
			if fields[i].Name != n {
				t.Errorf("field %d: expected %q, got %q", i, n, fields[i].Name)
			}
		}
	})

	t.Run("decodes percent and plus escapes", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/lists",
			strings.NewReader("name_extra_1=Painel+Solar+550W&unit_extra_1=m%C2%B2"))
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields[0].Value != "Painel Solar 550W" {
			t.Errorf("plus not decoded: %q", fields[0].Value)
		}
		if fields[1].Value != "m²" {
			t.Errorf("percent escape not decoded: %q", fields[1].Value)
		}
	})

	t.Run("skips undecodable pairs", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/lists",
			strings.NewReader("qty_1=2&bad=%zz&qty_2=4"))
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fields) != 2 {
			t.Fatalf("expected 2 fields, got %d: %+v", len(fields), fields)
		}
	})

	t.Run("multipart body preserves wire order", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for _, pair := range [][2]string{
			{"client", "Dona Maria"},
			{"qty_2", "1"},
			{"qty_1", "3"},
			{"technician", "Carlos"},
		} {
			if err := mw.WriteField(pair[0], pair[1]); err != nil {
				t.Fatal(err)
			}
		}
		mw.Close()

		r := httptest.NewRequest("POST", "/api/lists", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantNames := []string{"client", "qty_2", "qty_1", "technician"}
		if len(fields) != len(wantNames) {
			t.Fatalf("expected %d fields, got %d: %+v", len(wantNames), len(fields), fields)
		}
		for i, n := range wantNames {
			if fields[i].Name != n {
				t.Errorf("field %d: expected %q, got %q", i, n, fields[i].Name)
			}
		}
		if fields[0].Value != "Dona Maria" {
			t.Errorf("multipart value not decoded: %q", fields[0].Value)
		}
	})

	t.Run("multipart file parts are skipped", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("attachment", "foto.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write([]byte("binary")); err != nil {
			t.Fatal(err)
		}
		if err := mw.WriteField("qty_1", "2"); err != nil {
			t.Fatal(err)
		}
		mw.Close()

		r := httptest.NewRequest("POST", "/api/lists", &buf)
		r.Header.Set("Content-Type", mw.FormDataContentType())
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fields) != 1 || fields[0].Name != "qty_1" {
			t.Fatalf("expected only qty_1, got %+v", fields)
		}
	})

	t.Run("empty body yields no fields", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/api/lists", strings.NewReader(""))
		fields, err := readOrderedForm(r)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fields != nil {
			t.Fatalf("expected nil, got %+v", fields)
		}
	})
}

func TestFirstValue(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/lists",
		strings.NewReader("client=First&client=Second"))
	fields, _ := readOrderedForm(r)
	if got := firstValue(fields, "client"); got != "First" {
		t.Errorf("expected first occurrence, got %q", got)
	}
	if got := firstValue(fields, "missing"); got != "" {
		t.Errorf("expected empty for missing field, got %q", got)
	}
}
