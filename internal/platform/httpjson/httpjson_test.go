package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"pawfect-match/internal/platform/logger"
	"pawfect-match/internal/platform/sentinel"
	"pawfect-match/internal/platform/validation"
)

func TestWriteError_StatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{validation.New("name", validation.ReasonEmpty), http.StatusBadRequest},
		{fmt.Errorf("%w: bad status", sentinel.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("pet: %w", sentinel.ErrNotFound), http.StatusNotFound},
		{sentinel.ErrAlreadyExists, http.StatusConflict},
		{fmt.Errorf("%w: referenced", sentinel.ErrConflict), http.StatusConflict},
		{errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		WriteError(rec, logger.Nop(), tc.err)
		if rec.Code != tc.want {
			t.Fatalf("err=%v: expected %d, got %d", tc.err, tc.want, rec.Code)
		}
	}
}

func TestWriteError_IncludesFieldReasons(t *testing.T) {
	rec := httptest.NewRecorder()
	verr := validation.New("age", validation.ReasonNegative)
	WriteError(rec, logger.Nop(), verr)

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body.Fields) != 1 || body.Fields[0].Reason != validation.ReasonNegative {
		t.Fatalf("unexpected fields %#v", body.Fields)
	}
}

func TestWriteError_HidesStorageDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, logger.Nop(), fmt.Errorf("%w: dial tcp 10.0.0.1:5432", sentinel.ErrStorage))

	var body ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Error != "internal error" {
		t.Fatalf("expected generic message, got %q", body.Error)
	}
}

func TestText(t *testing.T) {
	cases := map[string]string{
		`3`:     "3",
		`"3"`:   "3",
		`"abc"`: "abc",
		`-1`:    "-1",
		`3.5`:   "3.5",
		`null`:  "",
		``:      "",
		`" 7 "`: " 7 ",
		`true`:  "true",
		`"á"`:   "á",
	}
	for in, want := range cases {
		if got := Text(json.RawMessage(in)); got != want {
			t.Fatalf("Text(%s) = %q, want %q", in, got, want)
		}
	}
}
