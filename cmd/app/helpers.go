package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sushihentaime/blogsite/internal/activityservice"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
)

const maxBodyBytes = 1_048_576

type envelope map[string]any

func (app *application) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	json, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}

	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(json)

	return nil
}

// wantsJSON reports whether the client sent or asked for JSON rather than HTML.
func wantsJSON(r *http.Request) bool {
	if isJSON(r.Header.Get("Content-Type")) {
		return true
	}

	for _, accept := range strings.Split(r.Header.Get("Accept"), ",") {
		if isJSON(accept) {
			return true
		}
	}

	return false
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(contentType))
	return err == nil && mediaType == "application/json"
}

func (app *application) parseJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("request body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("request body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("request body contains an invalid value for the %q field", unmarshalTypeError.Field)
			}
			return fmt.Errorf("request body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("request body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("request body contains unknown field %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}
	err = decoder.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("request body must only contain a single JSON value")
	}
	return nil
}

// formInput is implemented by request structs that can be filled from an HTML form.
type formInput interface {
	fromForm(form url.Values)
}

// parseInput decodes a JSON body or a urlencoded form into dst, depending on the Content-Type.
func (app *application) parseInput(w http.ResponseWriter, r *http.Request, dst formInput) error {
	if isJSON(r.Header.Get("Content-Type")) {
		return app.parseJSON(w, r, dst)
	}

	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBodyBytes))

	err := r.ParseForm()
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			return fmt.Errorf("request body must not be larger than %d bytes", maxBytesError.Limit)
		}
		return errors.New("request body contains a badly-formed form")
	}

	dst.fromForm(r.PostForm)
	return nil
}

func (app *application) readIDParam(r *http.Request, key string) (int, error) {
	params := httprouter.ParamsFromContext(r.Context())

	id, err := strconv.Atoi(params.ByName(key))
	if err != nil || id < 1 {
		return 0, errors.New("invalid ID parameter")
	}

	return id, nil
}

func (app *application) setSessionCookie(w http.ResponseWriter, sess *sessionservice.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.Session.CookieName,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.Expiry,
		MaxAge:   int(time.Until(sess.Expiry).Seconds()),
		HttpOnly: true,
		Secure:   app.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

func (app *application) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     app.config.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   app.config.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
}

// recordActivity publishes an activity event. Failures are logged and never reach the client.
func (app *application) recordActivity(r *http.Request, e activityservice.Event) {
	err := app.activityService.Publish(r.Context(), e)
	if err != nil {
		app.logger.Warn("could not publish activity", slog.String("kind", string(e.Kind)), slog.Int("user_id", e.UserID), slog.String("error", err.Error()))
	}
}
