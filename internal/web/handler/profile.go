package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/services/profile"
	"github.com/mihara/courseflow/internal/web/middleware"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// ProfileHandler handles the authenticated pages: menu, profile edit,
// and course reselection
type ProfileHandler struct {
	profileService *profile.Service
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *profile.Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Menu renders the authenticated landing page
func (h *ProfileHandler) Menu(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.Menu(pages.MenuData{
		PageData: pageData(r, "メニュー"),
	}))
}

// EditForm renders the profile edit form prefilled with current values
func (h *ProfileHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	render(w, r, pages.EditData(pages.EditDataData{
		PageData: pageData(r, "登録情報の変更"),
		Name:     user.Name,
		Birthday: user.Birthday,
		Email:    user.Email,
		Course:   user.Course,
		Courses:  model.Catalog(),
	}))
}

// EditSubmit persists the edited profile fields
func (h *ProfileHandler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "フォームの内容を読み取れませんでした")
		http.Redirect(w, r, "/edit_data", http.StatusSeeOther)
		return
	}

	user := middleware.GetUser(r.Context())
	in := profile.UpdateInput{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Birthday: strings.TrimSpace(r.FormValue("birthday")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Course:   r.FormValue("course"),
	}

	if _, err := h.profileService.Update(r.Context(), user.ID, in); err != nil {
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			middleware.SetFlash(w, "error", "このメールアドレスは既に使われています")
		case errors.Is(err, model.ErrUnknownCourse):
			middleware.SetFlash(w, "error", "コースを選択してください")
		default:
			middleware.SetFlash(w, "error", "変更の保存に失敗しました。もう一度お試しください")
		}
		http.Redirect(w, r, "/edit_data", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/thank_you_edit", http.StatusSeeOther)
}

// ThankYouEdit renders the post-edit confirmation page
func (h *ProfileHandler) ThankYouEdit(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ThankYouEdit(pages.ThankYouData{
		PageData: pageData(r, "変更完了"),
	}))
}

// Reselect renders the course catalog for the authenticated change flow
func (h *ProfileHandler) Reselect(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ChooseCourse(pages.ChooseCourseData{
		PageData: pageData(r, "コース変更"),
		Courses:  model.Catalog(),
		Reselect: true,
	}))
}

// Confirm2 renders the reselection confirmation step
func (h *ProfileHandler) Confirm2(w http.ResponseWriter, r *http.Request) {
	course := r.URL.Query().Get("course")
	if !model.ValidCourse(course) {
		middleware.SetFlash(w, "error", "コースを選択してください")
		http.Redirect(w, r, "/reselect_course", http.StatusSeeOther)
		return
	}

	render(w, r, pages.ConfirmCourse2(pages.ConfirmCourseData{
		PageData: pageData(r, "コース変更の確認"),
		Course:   course,
	}))
}

// Register2 applies the course change and renders the completion page
func (h *ProfileHandler) Register2(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.SetFlash(w, "error", "フォームの内容を読み取れませんでした")
		http.Redirect(w, r, "/reselect_course", http.StatusSeeOther)
		return
	}

	user := middleware.GetUser(r.Context())
	course := r.FormValue("course")

	updated, err := h.profileService.SelectCourse(r.Context(), user.ID, course)
	if err != nil {
		if errors.Is(err, model.ErrUnknownCourse) {
			middleware.SetFlash(w, "error", "コースを選択してください")
		} else {
			middleware.SetFlash(w, "error", "コースの変更に失敗しました。もう一度お試しください")
		}
		http.Redirect(w, r, "/reselect_course", http.StatusSeeOther)
		return
	}

	data := pageData(r, "コース変更完了")
	data.User = updated
	render(w, r, pages.RegisterCourse2Done(pages.ConfirmCourseData{
		PageData: data,
		Course:   updated.Course,
	}))
}
