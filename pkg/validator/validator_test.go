package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/solarbom/pkg/validator"
)

type sampleItem struct {
	Name string  `json:"name" validate:"required,max=255"`
	Unit string  `json:"unit" validate:"required,max=16"`
	Qty  float64 `json:"qty"  validate:"gt=0"`
}

type sampleList struct {
	Client string       `json:"client" validate:"required,min=1,max=255"`
	Items  []sampleItem `json:"items"  validate:"required,min=1,dive"`
}

func validItems() []sampleItem {
	return []sampleItem{{Name: "Painel Solar 550W", Unit: "un", Qty: 3}}
}

func TestValidate_valid(t *testing.T) {
	s := sampleList{Client: "Dona Maria", Items: validItems()}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleList{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleList{}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["client"] != "This field is required" {
		t.Errorf("unexpected client message: %q", m["client"])
	}
	if m["items"] != "This field is required" {
		t.Errorf("unexpected items message: %q", m["items"])
	}
}

func TestFormatValidationErrors_emptySlice(t *testing.T) {
	s := sampleList{Client: "Maria", Items: []sampleItem{}}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["items"] != "At least 1 entries required" {
		t.Errorf("unexpected items message: %q", m["items"])
	}
}

func TestFormatValidationErrors_nestedIndex(t *testing.T) {
	s := sampleList{Client: "Maria", Items: []sampleItem{
		{Name: "Painel", Unit: "un", Qty: 2},
		{Name: "Cabo", Unit: "m", Qty: 0},
	}}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["items[1].qty"] != "Must be greater than 0" {
		t.Errorf("unexpected nested message: %v", m)
	}
}

func TestFormatValidationErrors_max(t *testing.T) {
	s := sampleList{Client: strings.Repeat("x", 256), Items: validItems()}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["client"] != "Maximum length is 255" {
		t.Errorf("unexpected client message: %q", m["client"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"client":"Dona Maria","items":[{"name":"Painel Solar 550W","unit":"un","qty":3}]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[sampleList](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Client != "Dona Maria" {
		t.Errorf("unexpected Client: %q", req.Client)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[sampleList](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_missingField(t *testing.T) {
	body := `{"items":[{"name":"Painel","unit":"un","qty":1}]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[sampleList](w, r)
	if ok {
		t.Fatal("expected ok=false for missing client")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Validation failed") {
		t.Errorf("expected 'Validation failed' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_badQuantity(t *testing.T) {
	body := `{"client":"Maria","items":[{"name":"Painel","unit":"un","qty":-2}]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[sampleList](w, r)
	if ok {
		t.Fatal("expected ok=false for negative qty")
	}
	if !strings.Contains(w.Body.String(), "greater than 0") {
		t.Errorf("expected qty error in body, got: %s", w.Body.String())
	}
}
