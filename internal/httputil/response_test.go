package httputil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 201, map[string]string{"id": "abc"})

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Status != "ok" {
		t.Errorf("Status = %q, want ok", env.Status)
	}
	if env.Error != nil {
		t.Errorf("Error = %+v, want nil on success", env.Error)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "NOT_FOUND", "item not found")

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env.Status != "error" {
		t.Errorf("Status = %q, want error", env.Status)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" || env.Error.Message != "item not found" {
		t.Errorf("Error = %+v, want NOT_FOUND/item not found", env.Error)
	}
	if env.Data != nil {
		t.Errorf("Data = %v, want omitted on error", env.Data)
	}
}

func TestReadJSON(t *testing.T) {
	req := httptest.NewRequest("PUT", "/", strings.NewReader(`{"name":"x"}`))
	var dst struct {
		Name string `json:"name"`
	}
	if err := ReadJSON(req, &dst); err != nil {
		t.Fatal(err)
	}
	if dst.Name != "x" {
		t.Errorf("Name = %q, want x", dst.Name)
	}
}

func TestReadJSON_BodyTooLarge(t *testing.T) {
	huge := append([]byte(`{"name":"`), bytes.Repeat([]byte("x"), maxBodyBytes+1)...)
	huge = append(huge, []byte(`"}`)...)
	req := httptest.NewRequest("PUT", "/", bytes.NewReader(huge))

	var dst struct {
		Name string `json:"name"`
	}
	if err := ReadJSON(req, &dst); err == nil {
		t.Error("expected an error for a body over the size cap")
	}
}
