package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/services/auth"
	"github.com/mihara/courseflow/internal/web/middleware"
	"github.com/mihara/courseflow/internal/web/views/layout"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// RegistrationHandler handles account registration
type RegistrationHandler struct {
	authService *auth.Service
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(authService *auth.Service) *RegistrationHandler {
	return &RegistrationHandler{
		authService: authService,
	}
}

// Form renders the registration form.
// The course carried through the selection flow arrives as a query
// parameter (GET) or a form field (POST re-render).
func (h *RegistrationHandler) Form(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil && r.FormValue("course") != "" {
			course = r.FormValue("course")
		}
	}
	if !model.ValidCourse(course) {
		course = ""
	}

	render(w, r, pages.Registration(pages.RegistrationData{
		PageData: pageData(r, "利用者登録"),
		Course:   course,
	}))
}

// Submit creates the user from the registration form
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "フォームの内容を読み取れませんでした")
		http.Redirect(w, r, "/user_registration", http.StatusSeeOther)
		return
	}

	in := auth.RegisterInput{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Birthday:     strings.TrimSpace(r.FormValue("birthday")),
		Email:        strings.TrimSpace(r.FormValue("email1")),
		EmailConfirm: strings.TrimSpace(r.FormValue("email2")),
		Password:     r.FormValue("password"),
		Course:       r.FormValue("course"),
	}

	if _, err := h.authService.Register(r.Context(), in); err != nil {
		if errors.Is(err, model.ErrUnknownCourse) {
			middleware.SetFlash(w, "error", "コースを選択してください")
			http.Redirect(w, r, "/choose_course", http.StatusSeeOther)
			return
		}

		var msg string
		switch {
		case errors.Is(err, auth.ErrEmailMismatch):
			msg = "メールアドレスが一致しません"
		case errors.Is(err, model.ErrEmailTaken):
			msg = "このメールアドレスは既に登録されています"
		default:
			msg = "登録に失敗しました。もう一度お試しください"
		}

		// Re-render the form with the submitted values so nothing has
		// to be retyped
		data := pageData(r, "利用者登録")
		data.Flash = &layout.FlashMessage{Type: "error", Message: msg}
		render(w, r, pages.Registration(pages.RegistrationData{
			PageData: data,
			Name:     in.Name,
			Birthday: in.Birthday,
			Email:    in.Email,
			Course:   in.Course,
		}))
		return
	}

	http.Redirect(w, r, "/thank_you_registration", http.StatusSeeOther)
}

// ThankYou renders the post-registration page
func (h *RegistrationHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ThankYouRegistration(pages.ThankYouData{
		PageData: pageData(r, "登録完了"),
	}))
}
