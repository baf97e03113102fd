package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogsite/internal/blogservice"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
)

func TestHumanDate(t *testing.T) {
	tests := []struct {
		name string
		tm   time.Time
		want string
	}{
		{
			name: "Afternoon",
			tm:   time.Date(2024, 3, 17, 15, 4, 5, 0, time.Local),
			want: "03/17/2024, 03:04:05 PM",
		},
		{
			name: "Morning",
			tm:   time.Date(2024, 12, 1, 9, 0, 0, 0, time.Local),
			want: "12/01/2024, 09:00:00 AM",
		},
		{
			name: "Empty",
			tm:   time.Time{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanDate(tt.tm))
		})
	}
}

func TestNewTemplateCache(t *testing.T) {
	cache, err := newTemplateCache()
	require.NoError(t, err)

	for _, page := range []string{"home.tmpl", "signup.tmpl", "signin.tmpl", "edit.tmpl", "account.tmpl"} {
		assert.Contains(t, cache, page)
	}
}

func TestRender(t *testing.T) {
	app := newMiddlewareApplication(t)

	templates, err := newTemplateCache()
	require.NoError(t, err)
	app.templates = templates

	alice := &sessionservice.Session{User: sessionservice.User{ID: 1, Name: "alice"}}

	t.Run("Home Escapes Post Content", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = app.contextSetSession(req, alice)
		res := httptest.NewRecorder()

		data := app.newTemplateData(req)
		data.Posts = []blogservice.Post{
			{ID: 3, CreatorUserID: 1, CreatorName: "alice", Title: "<script>alert(1)</script>", Body: "mine"},
			{ID: 2, CreatorUserID: 2, CreatorName: "bob", Title: "Bob's post", Body: "his"},
		}

		app.render(res, req, http.StatusOK, "home.tmpl", data)

		body := res.Body.String()
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "text/html; charset=utf-8", res.Header().Get("Content-Type"))
		assert.NotContains(t, body, "<script>alert(1)</script>")
		assert.Contains(t, body, "&lt;script&gt;")
		assert.Contains(t, body, `/edit-post/3`)
		assert.NotContains(t, body, `/edit-post/2`)
	})

	t.Run("Anonymous Navigation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/signin", nil)
		res := httptest.NewRecorder()

		app.render(res, req, http.StatusOK, "signin.tmpl", app.newTemplateData(req))

		assert.Equal(t, http.StatusOK, res.Code)
		assert.Contains(t, res.Body.String(), `href="/signup"`)
	})

	t.Run("Unknown Page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()

		app.render(res, req, http.StatusOK, "missing.tmpl", app.newTemplateData(req))

		assert.Equal(t, http.StatusInternalServerError, res.Code)
	})
}
