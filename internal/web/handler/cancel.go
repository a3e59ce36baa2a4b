package handler

import (
	"net/http"

	"github.com/mihara/courseflow/internal/services/profile"
	"github.com/mihara/courseflow/internal/web/middleware"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// CancelHandler handles the course cancellation flow
type CancelHandler struct {
	profileService *profile.Service
}

// NewCancelHandler creates a new CancelHandler
func NewCancelHandler(profileService *profile.Service) *CancelHandler {
	return &CancelHandler{
		profileService: profileService,
	}
}

// Cancel renders the cancellation entry page
func (h *CancelHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user.Course == "" {
		middleware.SetFlash(w, "info", "お申し込み中のコースはありません")
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	render(w, r, pages.CancelCourse(pages.CancelCourseData{
		PageData: pageData(r, "コースのキャンセル"),
		Course:   user.Course,
	}))
}

// Confirm renders the cancellation confirmation form
func (h *CancelHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	if user.Course == "" {
		middleware.SetFlash(w, "info", "お申し込み中のコースはありません")
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	render(w, r, pages.ConfirmCancel(pages.CancelCourseData{
		PageData: pageData(r, "キャンセルの確認"),
		Course:   user.Course,
	}))
}

// Handle clears the user's course and moves on to the thank-you page
func (h *CancelHandler) Handle(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	if _, err := h.profileService.CancelCourse(r.Context(), user.ID); err != nil {
		middleware.SetFlash(w, "error", "キャンセルに失敗しました。もう一度お試しください")
		http.Redirect(w, r, "/cancel_course", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/thank_you_cancel", http.StatusSeeOther)
}

// ThankYou renders the post-cancellation page
func (h *CancelHandler) ThankYou(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ThankYouCancel(pages.ThankYouData{
		PageData: pageData(r, "キャンセル完了"),
	}))
}
