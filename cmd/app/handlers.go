package main

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sushihentaime/blogsite/internal/activityservice"
	"github.com/sushihentaime/blogsite/internal/blogservice"
	"github.com/sushihentaime/blogsite/internal/common"
	"github.com/sushihentaime/blogsite/internal/sessionservice"
	"github.com/sushihentaime/blogsite/internal/userservice"
)

type credentialsRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (in *credentialsRequest) fromForm(form url.Values) {
	in.Name = form.Get("name")
	in.Password = form.Get("password")
}

type postRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

func (in *postRequest) fromForm(form url.Values) {
	in.Title = form.Get("title")
	in.Content = form.Get("content")
	in.Category = form.Get("category")
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	posts, err := app.blogService.ListPosts(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if wantsJSON(r) {
		err = app.writeJSON(w, http.StatusOK, envelope{"posts": posts}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := app.newTemplateData(r)
	data.Posts = posts
	app.render(w, r, http.StatusOK, "home.tmpl", data)
}

func (app *application) signupPageHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "signup.tmpl", app.newTemplateData(r))
}

func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var input credentialsRequest

	err := app.parseInput(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.SignUp(r.Context(), input.Name, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateName):
			app.duplicateNameErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.recordActivity(r, activityservice.Event{
		Kind:       activityservice.KindSignedUp,
		UserID:     user.ID,
		OccurredAt: user.CreatedAt,
	})

	http.Redirect(w, r, "/signin", http.StatusSeeOther)
}

func (app *application) signinPageHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "signin.tmpl", app.newTemplateData(r))
}

func (app *application) signinHandler(w http.ResponseWriter, r *http.Request) {
	var input credentialsRequest

	err := app.parseInput(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.SignIn(r.Context(), input.Name, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrAuthenticationFailure):
			app.invalidCredentialsErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	sess, err := app.sessions.Establish(r.Context(), sessionservice.User{ID: user.ID, Name: user.Name})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.setSessionCookie(w, sess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) createPostHandler(w http.ResponseWriter, r *http.Request) {
	var input postRequest

	err := app.parseInput(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	sess := app.contextGetSession(r)

	post, err := app.blogService.CreatePost(r.Context(), &blogservice.CreatePostRequest{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		UserID:      sess.User.ID,
		CreatorName: sess.User.Name,
	})
	if err != nil {
		switch {
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		case errors.Is(err, blogservice.ErrUserForeignKey):
			app.unAuthorizedErrorResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.recordActivity(r, activityservice.Event{
		Kind:       activityservice.KindPostCreated,
		UserID:     sess.User.ID,
		BlogID:     &post.ID,
		Title:      post.Title,
		OccurredAt: post.DateCreated,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) editPostPageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	sess := app.contextGetSession(r)

	post, err := app.blogService.GetPostForOwner(r.Context(), id, sess.User.ID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrForbidden):
			app.forbiddenErrorResponse(w, r, "You cant edit someone elses post!")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := app.newTemplateData(r)
	data.Post = post
	app.render(w, r, http.StatusOK, "edit.tmpl", data)
}

func (app *application) editPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	var input postRequest

	err = app.parseInput(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	sess := app.contextGetSession(r)

	post, err := app.blogService.UpdatePost(r.Context(), &blogservice.UpdatePostRequest{
		ID:          id,
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		UserID:      sess.User.ID,
		CreatorName: sess.User.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrForbidden):
			app.forbiddenErrorResponse(w, r, "You cant edit someone elses post!")
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.recordActivity(r, activityservice.Event{
		Kind:       activityservice.KindPostUpdated,
		UserID:     sess.User.ID,
		BlogID:     &post.ID,
		Title:      post.Title,
		OccurredAt: post.DateCreated,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	sess := app.contextGetSession(r)

	err = app.blogService.DeletePost(r.Context(), id, sess.User.ID)
	if err != nil {
		switch {
		case errors.Is(err, blogservice.ErrRecordNotFound):
			app.notFoundErrorResponse(w, r)
		case errors.Is(err, blogservice.ErrForbidden):
			app.forbiddenErrorResponse(w, r, "You cant delete someone elses post!")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.recordActivity(r, activityservice.Event{
		Kind:       activityservice.KindPostDeleted,
		UserID:     sess.User.ID,
		BlogID:     &id,
		OccurredAt: time.Now(),
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (app *application) accountPageHandler(w http.ResponseWriter, r *http.Request) {
	sess := app.contextGetSession(r)

	activities, err := app.activityService.RecentActivity(r.Context(), sess.User.ID, 10)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if wantsJSON(r) {
		err = app.writeJSON(w, http.StatusOK, envelope{"user": sess.User, "activities": activities}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	data := app.newTemplateData(r)
	data.Activities = activities
	app.render(w, r, http.StatusOK, "account.tmpl", data)
}

func (app *application) updateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var input credentialsRequest

	err := app.parseInput(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	sess := app.contextGetSession(r)

	user, err := app.userService.UpdateAccount(r.Context(), sess.User.ID, input.Name, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, userservice.ErrDuplicateName):
			app.duplicateNameErrorResponse(w, r)
		case errors.Is(err, userservice.ErrNotFound):
			app.unAuthorizedErrorResponse(w, r)
		case errors.As(err, &common.ValidationError{}):
			validationErr := err.(common.ValidationError)
			app.failedValidationErrorResponse(w, r, validationErr.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// The session may have expired between authenticate and here; the account
	// change itself has already been stored.
	err = app.sessions.UpdateDisplayName(r.Context(), sess.Token, user.Name)
	if err != nil && !errors.Is(err, sessionservice.ErrSessionNotFound) {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.recordActivity(r, activityservice.Event{
		Kind:       activityservice.KindAccountUpdated,
		UserID:     user.ID,
		Title:      "renamed to " + strconv.Quote(user.Name),
		OccurredAt: time.Now(),
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
