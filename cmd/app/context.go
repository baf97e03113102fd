package main

import (
	"context"
	"net/http"

	"github.com/sushihentaime/blogsite/internal/sessionservice"
)

type contextKey string

const sessionContextKey = contextKey("session")

func (app *application) contextSetSession(r *http.Request, sess *sessionservice.Session) *http.Request {
	ctx := context.WithValue(r.Context(), sessionContextKey, sess)
	return r.WithContext(ctx)
}

func (app *application) contextGetSession(r *http.Request) *sessionservice.Session {
	sess, ok := r.Context().Value(sessionContextKey).(*sessionservice.Session)
	if !ok {
		return sessionservice.AnonymousSession
	}
	return sess
}
