package handler

import (
	"net/http"

	"github.com/mihara/courseflow/internal/web/views/pages"
)

// HomeHandler handles the landing pages
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the landing page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.Home(pages.HomeData{
		PageData: pageData(r, "ホーム"),
	}))
}

// New renders the secondary landing page
func (h *HomeHandler) New(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.SecondScreen(pages.HomeData{
		PageData: pageData(r, "ご案内"),
	}))
}
