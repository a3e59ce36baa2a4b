package recommend

import (
	"fmt"

	"github.com/mihara/courseflow/internal/model"
)

// FallbackMessage is returned for any answer combination outside the table
const FallbackMessage = "該当するコースの組み合わせが見つかりませんでした。もう一度お試しください。"

// table maps "technical-business-duration" answer triples to courses.
// It is a literal enumeration, not a scoring rule; every defined
// combination appears here and anything else falls back.
var table = map[string]string{
	"1-1-1": model.CourseBandai,
	"1-1-2": model.CourseAdatara,
	"1-2-1": model.CourseBandai,
	"1-2-2": model.CourseAzuma,
	"2-1-1": model.CourseAdatara,
	"2-1-2": model.CourseAzuma,
	"2-2-1": model.CourseAdatara,
	"2-2-2": model.CourseIide,
	"3-1-1": model.CourseAzuma,
	"3-1-2": model.CourseIide,
	"3-2-1": model.CourseIide,
	"3-2-2": model.CourseIide,
}

// Result is the outcome of one recommendation lookup
type Result struct {
	// Matched is false when the answers missed the table
	Matched bool
	// Course is the recommended course name; empty when unmatched
	Course string
	// Text is the user-facing recommendation message
	Text string
}

// Service resolves quiz answers to course recommendations.
// It is pure: no storage, no side effects.
type Service struct{}

// New creates a new recommendation service
func New() *Service {
	return &Service{}
}

// Recommend looks up the answer triple in the fixed decision table.
// Missing answers arrive as empty strings and miss the table like any
// other undefined combination.
func (s *Service) Recommend(technical, business, duration string) Result {
	key := technical + "-" + business + "-" + duration
	course, ok := table[key]
	if !ok {
		return Result{Text: FallbackMessage}
	}
	return Result{
		Matched: true,
		Course:  course,
		Text:    RecommendationText(course),
	}
}

// RecommendationText renders the fixed message for a recommended course
func RecommendationText(course string) string {
	return fmt.Sprintf("あなたにおすすめのコースは「%s」です。", course)
}
