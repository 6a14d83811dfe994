package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pribylovaa/hbnb-web/internal/service"
	"github.com/pribylovaa/hbnb-web/internal/session"
	"github.com/pribylovaa/hbnb-web/internal/view"
	logctx "github.com/pribylovaa/hbnb-web/pkg/log"
)

// LoginPage — форма входа; с действующей сессией — на главную.
func (h *Handlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.From(r.Context()).Authenticated() {
		redirect(w, r, "/")
		return
	}

	h.render(w, r, http.StatusOK, "login", view.LoginPage{Layout: layout(r, "Login")})
}

// Login — POST формы входа: токен сохраняется в cookie, затем 303 на главную.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r); err != nil {
		page := view.LoginPage{Layout: layout(r, "Login")}
		page.Error = msgBadForm
		h.render(w, r, http.StatusBadRequest, "login", page)
		return
	}

	email := r.PostForm.Get("email")

	token, err := h.Service.Login(r.Context(), email, r.PostForm.Get("password"))
	if err == nil {
		err = h.Sessions.Start(session.NewHTTPJar(w, r), token)
	}

	if err != nil {
		page := view.LoginPage{Layout: layout(r, "Login"), Email: email}
		page.Error = service.LoginFailureMessage(err)
		h.render(w, r, failureStatus(err), "login", page)
		return
	}

	redirect(w, r, "/")
}

// Logout удаляет cookie сессии.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.End(session.NewHTTPJar(w, r))
	logctx.From(r.Context()).Info("logout", slog.Bool("had_session", session.From(r.Context()).Authenticated()))
	redirect(w, r, "/")
}
