package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogsite/internal/activityservice"
	"github.com/sushihentaime/blogsite/internal/blogservice"
	"github.com/sushihentaime/blogsite/internal/common"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
	"github.com/sushihentaime/blogsite/internal/userservice"
)

// testConfig returns the defaults with rate limiting switched off.
func testConfig(t *testing.T) *Config {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	cfg.RateLimit.Enabled = false
	return cfg
}

func newTestApplication(t *testing.T) *application {
	db := common.TestDB(t)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := testConfig(t)

	templates, err := newTemplateCache()
	require.NoError(t, err)

	return &application{
		config:          cfg,
		logger:          logger,
		userService:     userservice.NewUserService(db),
		blogService:     blogservice.NewBlogService(db),
		activityService: activityservice.NewActivityService(db, common.DiscardProducer{}, nil, logger),
		sessions:        sessionservice.NewMemoryStore(time.Hour),
		templates:       templates,
	}
}

type testServer struct {
	*httptest.Server
}

func newTestServer(t *testing.T, h http.Handler) *testServer {
	ts := httptest.NewServer(h)

	ts.Client().CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	t.Cleanup(ts.Close)

	return &testServer{ts}
}

type response struct {
	status int
	header http.Header
	body   string
}

func (ts *testServer) do(t *testing.T, req *http.Request, cookie *http.Cookie) response {
	if cookie != nil {
		req.AddCookie(cookie)
	}

	res, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return response{status: res.StatusCode, header: res.Header, body: strings.TrimSpace(string(body))}
}

func (ts *testServer) get(t *testing.T, path string, cookie *http.Cookie) response {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)

	return ts.do(t, req, cookie)
}

func (ts *testServer) getJSON(t *testing.T, path string, cookie *http.Cookie, dst any) response {
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")

	res := ts.do(t, req, cookie)
	if dst != nil && res.status == http.StatusOK {
		require.NoError(t, json.Unmarshal([]byte(res.body), dst))
	}

	return res
}

func (ts *testServer) postForm(t *testing.T, path string, form url.Values, cookie *http.Cookie) response {
	req, err := http.NewRequest(http.MethodPost, ts.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return ts.do(t, req, cookie)
}

func (ts *testServer) postJSON(t *testing.T, path string, data any, cookie *http.Cookie) response {
	payload, err := json.Marshal(data)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	return ts.do(t, req, cookie)
}

func (ts *testServer) signup(t *testing.T, name, password string) {
	res := ts.postForm(t, "/signup", url.Values{"name": {name}, "password": {password}}, nil)
	require.Equal(t, http.StatusSeeOther, res.status, res.body)
}

// signin returns the session cookie handed out on a successful sign in.
func (ts *testServer) signin(t *testing.T, name, password string) *http.Cookie {
	res := ts.postForm(t, "/signin", url.Values{"name": {name}, "password": {password}}, nil)
	require.Equal(t, http.StatusSeeOther, res.status, res.body)

	cookie := sessionCookie(res.header)
	require.NotNil(t, cookie)

	return cookie
}

func sessionCookie(header http.Header) *http.Cookie {
	for _, c := range (&http.Response{Header: header}).Cookies() {
		if c.Name == "blogsite_session" {
			return c
		}
	}
	return nil
}
