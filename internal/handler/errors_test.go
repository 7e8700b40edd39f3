package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"zumpfinanc/internal/service"

	"github.com/gin-gonic/gin"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody int
		wantMsg  string
	}{
		{"validation", &service.ValidationError{Field: "month", Message: "invalid month"}, http.StatusBadRequest, 40001, "invalid month"},
		{"business rule", service.ErrEmailTaken, http.StatusBadRequest, 40002, "email already registered"},
		{"authentication", service.ErrInvalidPassword, http.StatusBadRequest, 40101, "invalid password"},
		{"wrapped not found", fmt.Errorf("lookup: %w", service.ErrNotFound), http.StatusNotFound, 40401, "not found"},
		{"unsaved entry", service.ErrUnsavedEntry, http.StatusInternalServerError, 50001, "internal server error"},
		{"unknown", errors.New("disk on fire"), http.StatusInternalServerError, 50001, "internal server error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondError(c, tc.err)

		var body struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode: %v", tc.name, err)
		}
		if w.Code != tc.wantCode || body.Code != tc.wantBody || body.Message != tc.wantMsg {
			t.Errorf("%s: got %d/%d %q, want %d/%d %q",
				tc.name, w.Code, body.Code, body.Message, tc.wantCode, tc.wantBody, tc.wantMsg)
		}
		if !c.IsAborted() {
			t.Errorf("%s: context should be aborted", tc.name)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]bool{
		"CONFIRMED":  true,
		" canceled ": true,
		"pending":    true,
		"DONE":       false,
		"":           false,
	} {
		if _, ok := parseStatus(in); ok != want {
			t.Errorf("parseStatus(%q) ok = %v, want %v", in, ok, want)
		}
	}
}
