package handler

import (
	"net/http"

	"github.com/mihara/courseflow/internal/services/recommend"
	"github.com/mihara/courseflow/internal/web/views/pages"
)

// RecommendHandler handles the recommendation quiz
type RecommendHandler struct {
	recommendService *recommend.Service
}

// NewRecommendHandler creates a new RecommendHandler
func NewRecommendHandler(recommendService *recommend.Service) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
	}
}

// Quiz renders the recommendation quiz form
func (h *RecommendHandler) Quiz(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.RecommenderTop(pages.RecommenderTopData{
		PageData: pageData(r, "コース診断"),
	}))
}

// Recommend computes and shows the recommendation for the submitted answers.
// Missing fields arrive as empty codes and hit the fallback like any
// other unmapped combination.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/course_recommendation", http.StatusSeeOther)
		return
	}

	result := h.recommendService.Recommend(
		r.FormValue("technical"),
		r.FormValue("business"),
		r.FormValue("duration"),
	)

	render(w, r, pages.RecommendResult(pages.RecommendResultData{
		PageData: pageData(r, "診断結果"),
		Matched:  result.Matched,
		Course:   result.Course,
		Text:     result.Text,
	}))
}
