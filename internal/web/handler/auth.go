package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/mihara/courseflow/internal/services/auth"
	"github.com/mihara/courseflow/internal/web/middleware"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	authService   *auth.Service
	sessionSecret []byte
	sessionTTL    time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service, sessionSecret []byte, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionSecret: sessionSecret,
		sessionTTL:    sessionTTL,
	}
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		// Already logged in
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	render(w, r, pages.Login(pages.LoginData{
		PageData: pageData(r, "ログイン"),
	}))
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "フォームの内容を読み取れませんでした")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		middleware.SetFlash(w, "error", "メールアドレスとパスワードを入力してください")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, err := h.authService.Login(r.Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrNotRegistered):
			middleware.SetFlash(w, "error", "登録されていないメールアドレスです")
		case errors.Is(err, auth.ErrInvalidCredentials):
			middleware.SetFlash(w, "error", "メールアドレスまたはパスワードが正しくありません")
		default:
			middleware.SetFlash(w, "error", "ログインに失敗しました。もう一度お試しください")
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	middleware.SetSessionCookie(w, session.Token, h.sessionSecret, h.sessionTTL)
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// Logout clears the session. It always succeeds, session or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r, h.sessionSecret); token != "" {
		_ = h.authService.Logout(r.Context(), token)
	}

	middleware.ClearSessionCookie(w)
	middleware.SetFlash(w, "info", "ログアウトしました")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
