package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/protomem/schedule-app/internal/response"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	err := response.JSON(w, http.StatusTeapot, response.JSONObject{"hello": "world"})
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if w.Code != http.StatusTeapot {
		t.Errorf("status: got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("body: got %v", body)
	}
}

func TestJSONWithHeaders(t *testing.T) {
	w := httptest.NewRecorder()

	headers := http.Header{}
	headers.Set("X-Custom", "yes")

	err := response.JSONWithHeaders(w, http.StatusOK, response.JSONObject{}, headers)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if w.Header().Get("X-Custom") != "yes" {
		t.Error("custom header not written")
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	w := httptest.NewRecorder()
	mw := response.NewMetricsResponseWriter(w)

	if mw.StatusCode != http.StatusOK {
		t.Errorf("default status: got %d", mw.StatusCode)
	}

	mw.WriteHeader(http.StatusCreated)
	mw.WriteHeader(http.StatusInternalServerError) // only the first sticks
	n, _ := mw.Write([]byte("hello"))

	if mw.StatusCode != http.StatusCreated {
		t.Errorf("status: got %d, want %d", mw.StatusCode, http.StatusCreated)
	}
	if n != 5 || mw.BytesCount != 5 {
		t.Errorf("bytes: wrote %d, counted %d", n, mw.BytesCount)
	}
}

func TestMetricsResponseWriterImplicitStatus(t *testing.T) {
	w := httptest.NewRecorder()
	mw := response.NewMetricsResponseWriter(w)

	mw.Write([]byte("ok"))
	mw.WriteHeader(http.StatusNotFound) // too late, header already sent

	if mw.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want %d", mw.StatusCode, http.StatusOK)
	}
}
