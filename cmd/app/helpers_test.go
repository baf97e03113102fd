package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsJSON(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		accept      string
		expected    bool
	}{
		{name: "Browser Form", contentType: "application/x-www-form-urlencoded", accept: "text/html,application/xhtml+xml", expected: false},
		{name: "JSON Body", contentType: "application/json; charset=utf-8", expected: true},
		{name: "Accept JSON", accept: "text/plain, application/json;q=0.9", expected: true},
		{name: "No Headers", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			assert.Equal(t, tt.expected, wantsJSON(req))
		})
	}
}

func TestParseInput(t *testing.T) {
	app := newMiddlewareApplication(t)

	tests := []struct {
		name        string
		contentType string
		body        string
		expected    postRequest
		wantErr     bool
	}{
		{
			name:        "Form",
			contentType: "application/x-www-form-urlencoded",
			body:        "title=Hi&content=there&category=misc",
			expected:    postRequest{Title: "Hi", Content: "there", Category: "misc"},
		},
		{
			name:        "JSON",
			contentType: "application/json",
			body:        `{"title": "Hi", "content": "there"}`,
			expected:    postRequest{Title: "Hi", Content: "there"},
		},
		{
			name:        "Badly Formed JSON",
			contentType: "application/json",
			body:        `{"title": `,
			wantErr:     true,
		},
		{
			name:        "Two JSON Values",
			contentType: "application/json",
			body:        `{"title": "a"}{"title": "b"}`,
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/create-post", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			res := httptest.NewRecorder()

			var input postRequest
			err := app.parseInput(res, req, &input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, input)
		})
	}
}

func TestReadIDParam(t *testing.T) {
	app := &application{}

	tests := []struct {
		value    string
		expected int
		wantErr  bool
	}{
		{value: "42", expected: 42},
		{value: "0", wantErr: true},
		{value: "-3", wantErr: true},
		{value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/edit-post/"+tt.value, nil)
			ctx := context.WithValue(req.Context(), httprouter.ParamsKey, httprouter.Params{{Key: "id", Value: tt.value}})
			req = req.WithContext(ctx)

			id, err := app.readIDParam(req, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestErrorResponseNegotiation(t *testing.T) {
	app := newMiddlewareApplication(t)
	errs := map[string]string{"title": "must be provided", "content": "must be provided"}

	t.Run("Plain Text", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/create-post", nil)
		res := httptest.NewRecorder()

		app.failedValidationErrorResponse(res, req, errs)

		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Equal(t, "content: must be provided\ntitle: must be provided\n", res.Body.String())
	})

	t.Run("JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/create-post", nil)
		req.Header.Set("Accept", "application/json")
		res := httptest.NewRecorder()

		app.failedValidationErrorResponse(res, req, errs)

		assert.Equal(t, http.StatusUnprocessableEntity, res.Code)
		assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error": {"title": "must be provided", "content": "must be provided"}}`, res.Body.String())
	})
}
