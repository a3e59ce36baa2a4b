package handler

import (
	"net/http"

	"github.com/mihara/courseflow/internal/model"
	"github.com/mihara/courseflow/internal/web/middleware"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// CourseHandler handles the pre-registration course selection steps
type CourseHandler struct{}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler() *CourseHandler {
	return &CourseHandler{}
}

// Choose renders the course catalog
func (h *CourseHandler) Choose(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.ChooseCourse(pages.ChooseCourseData{
		PageData: pageData(r, "コース選択"),
		Courses:  model.Catalog(),
	}))
}

// Confirm renders the confirmation step for the chosen course
func (h *CourseHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	course, ok := courseParam(w, r)
	if !ok {
		return
	}

	render(w, r, pages.ConfirmCourse(pages.ConfirmCourseData{
		PageData: pageData(r, "コースの確認"),
		Course:   course,
	}))
}

// Register renders the step that hands over to account registration
func (h *CourseHandler) Register(w http.ResponseWriter, r *http.Request) {
	course, ok := courseParam(w, r)
	if !ok {
		return
	}

	render(w, r, pages.RegisterCourse(pages.ConfirmCourseData{
		PageData: pageData(r, "お申し込み"),
		Course:   course,
	}))
}

// courseParam reads and validates the course query parameter.
// An unknown course bounces back to the catalog with a flash.
func courseParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	course := r.URL.Query().Get("course")
	if !model.ValidCourse(course) {
		middleware.SetFlash(w, "error", "コースを選択してください")
		http.Redirect(w, r, "/choose_course", http.StatusSeeOther)
		return "", false
	}
	return course, true
}
