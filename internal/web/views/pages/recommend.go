package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// RecommenderTopData holds data for the quiz entry page
type RecommenderTopData struct {
	layout.PageData
}

// RecommenderTop renders the recommendation quiz form
func RecommenderTop(data RecommenderTopData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>コース診断</h1>
<p>3つの質問に答えてください。</p>
<form action="/recommend_course" method="post">
<fieldset>
<legend>技術にどのくらい興味がありますか？</legend>
<label><input type="radio" name="technical" value="1" checked> とても興味がある</label>
<label><input type="radio" name="technical" value="2"> ある程度興味がある</label>
<label><input type="radio" name="technical" value="3"> あまり興味がない</label>
</fieldset>
<fieldset>
<legend>ビジネス寄りの内容を希望しますか？</legend>
<label><input type="radio" name="business" value="1" checked> 希望する</label>
<label><input type="radio" name="business" value="2"> 希望しない</label>
</fieldset>
<fieldset>
<legend>希望する期間はどちらですか？</legend>
<label><input type="radio" name="duration" value="1" checked> 短期</label>
<label><input type="radio" name="duration" value="2"> 長期</label>
</fieldset>
<button type="submit">診断する</button>
</form>
`)
		return err
	})
}

// RecommendResultData holds data for the recommendation result page
type RecommendResultData struct {
	layout.PageData
	// Matched is false when the answers hit the fallback
	Matched bool
	// Course is the recommended course name when matched
	Course string
	// Text is the recommendation or fallback message
	Text string
}

// RecommendResult renders the recommendation outcome
func RecommendResult(data RecommendResultData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>診断結果</h1>
<p class="recommendation">%s</p>
`, esc(data.Text)); err != nil {
			return err
		}

		if data.Matched {
			_, err := fmt.Fprintf(w, `<p><a href="/confirm_course?course=%s">このコースで申し込みに進む</a></p>
<p><a href="/choose_course">ほかのコースを見る</a></p>
`, query(data.Course))
			return err
		}

		_, err := io.WriteString(w, `<p><a href="/course_recommendation">もう一度診断する</a></p>
<p><a href="/choose_course">コース一覧から選ぶ</a></p>
`)
		return err
	})
}
