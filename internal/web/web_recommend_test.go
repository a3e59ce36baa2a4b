package web_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mihara/courseflow/internal/model"
)

func TestRecommendationQuizPage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/course_recommendation")
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form[action='/recommend_course']")
	assertContainsElement(t, doc, "input[name='technical']")
	assertContainsElement(t, doc, "input[name='business']")
	assertContainsElement(t, doc, "input[name='duration']")
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		technical string
		business  string
		duration  string
		course    string
	}{
		{"1", "1", "1", model.CourseBandai},
		{"1", "1", "2", model.CourseAdatara},
		{"1", "2", "1", model.CourseBandai},
		{"1", "2", "2", model.CourseAzuma},
		{"2", "1", "1", model.CourseAdatara},
		{"2", "1", "2", model.CourseAzuma},
		{"2", "2", "1", model.CourseAdatara},
		{"2", "2", "2", model.CourseIide},
		{"3", "1", "1", model.CourseAzuma},
		{"3", "1", "2", model.CourseIide},
		{"3", "2", "1", model.CourseIide},
		{"3", "2", "2", model.CourseIide},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s-%s-%s", tt.technical, tt.business, tt.duration), func(t *testing.T) {
			ts := newWebTestServer(t)

			form := url.Values{
				"technical": {tt.technical},
				"business":  {tt.business},
				"duration":  {tt.duration},
			}
			rr := ts.post("/recommend_course", form)
			assert.Equal(t, http.StatusOK, rr.Code)

			doc := parseHTML(rr.Body)
			assertContainsText(t, doc, ".recommendation", "あなたにおすすめのコースは「"+tt.course+"」です。")
			// A matched result offers a path into the application flow
			assertContainsElement(t, doc, "a[href^='/confirm_course']")
		})
	}
}

func TestRecommendationFallback(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"technical": {"9"},
		"business":  {"1"},
		"duration":  {"1"},
	}
	rr := ts.post("/recommend_course", form)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".recommendation", "該当するコースの組み合わせが見つかりませんでした")
	// No course to apply for, so no confirmation link
	assertNotContainsElement(t, doc, "a[href^='/confirm_course']")
	assertContainsElement(t, doc, "a[href='/course_recommendation']")
}

func TestRecommendationMissingAnswers(t *testing.T) {
	ts := newWebTestServer(t)

	// Empty form hits the fallback like any unmapped combination
	rr := ts.post("/recommend_course", url.Values{})
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".recommendation", "該当するコースの組み合わせが見つかりませんでした")
}
