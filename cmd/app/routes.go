package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	router.HandlerFunc(http.MethodGet, "/signup", app.signupPageHandler)
	router.HandlerFunc(http.MethodPost, "/signup", app.signupHandler)
	router.HandlerFunc(http.MethodGet, "/signin", app.signinPageHandler)
	router.HandlerFunc(http.MethodPost, "/signin", app.signinHandler)

	router.HandlerFunc(http.MethodGet, "/", app.requireAuthenticatedUser(app.homeHandler))
	router.HandlerFunc(http.MethodPost, "/create-post", app.requireAuthenticatedUser(app.createPostHandler))
	router.HandlerFunc(http.MethodGet, "/edit-post/:id", app.requireAuthenticatedUser(app.editPostPageHandler))
	router.HandlerFunc(http.MethodPost, "/edit-post/:id", app.requireAuthenticatedUser(app.editPostHandler))
	router.HandlerFunc(http.MethodPost, "/delete-post/:id", app.requireAuthenticatedUser(app.deletePostHandler))
	router.HandlerFunc(http.MethodGet, "/account", app.requireAuthenticatedUser(app.accountPageHandler))
	router.HandlerFunc(http.MethodPost, "/account", app.requireAuthenticatedUser(app.updateAccountHandler))

	return app.recoverPanic(app.logRequest(app.rateLimit(app.authenticate(router))))
}
