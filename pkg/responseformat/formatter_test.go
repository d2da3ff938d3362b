package responseformat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

type sample struct {
	Date    string `json:"date"`
	Holiday bool   `json:"holiday"`
}

func TestWriteResponseJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/holiday/2023-02-06", nil)
	rec := httptest.NewRecorder()

	if err := NewFormatter().WriteResponse(rec, req, sample{Date: "2023-02-06", Holiday: true}, map[string]string{"Cache-Control": "max-age=60"}); err != nil {
		t.Fatal(err)
	}

	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeJSON {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Header().Get("Cache-Control") != "max-age=60" {
		t.Error("extra headers not set")
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("CORS header not set")
	}

	var got sample
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if !got.Holiday || got.Date != "2023-02-06" {
		t.Errorf("unexpected body %+v", got)
	}
}

func TestWriteResponseMsgPack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/holiday/2023-02-06?format=msgpack", nil)
	rec := httptest.NewRecorder()

	if err := NewFormatter().WriteResponse(rec, req, sample{Date: "2023-02-06", Holiday: true}, nil); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != ContentTypeMsgPack {
		t.Errorf("Content-Type = %q", ct)
	}

	var got map[string]any
	if err := msgpack.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["date"] != "2023-02-06" || got["holiday"] != true {
		t.Errorf("msgpack should use json tags, got %v", got)
	}
}

func TestWriteError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/holidays/2023?zone=Zone+D", nil)
	rec := httptest.NewRecorder()

	if err := NewFormatter().WriteError(rec, req, http.StatusBadRequest, "unsupported zone", "Zone D"); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "unsupported zone" || body.Message != "Zone D" {
		t.Errorf("unexpected error body %+v", body)
	}
}
