package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// CancelCourseData holds data for the cancellation pages
type CancelCourseData struct {
	layout.PageData
	Course string
}

// CancelCourse renders the cancellation entry page
func CancelCourse(data CancelCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>コースのキャンセル</h1>
<p>現在のコース: <strong class="course-name">%s</strong></p>
<p><a href="/confirm_cancel">キャンセル手続きへ進む</a></p>
<p><a href="/menu">メニューへ戻る</a></p>
`, esc(data.Course))
		return err
	})
}

// ConfirmCancel renders the cancellation confirmation form
func ConfirmCancel(data CancelCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>キャンセルの確認</h1>
<p><strong class="course-name">%s</strong>コースのお申し込みを取り消します。よろしいですか？</p>
<form action="/handle_confirm_cancel" method="post">
<button type="submit">キャンセルを確定する</button>
</form>
<p><a href="/menu">やめてメニューへ戻る</a></p>
`, esc(data.Course))
		return err
	})
}

// ThankYouCancel renders the post-cancellation page
func ThankYouCancel(data ThankYouData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>キャンセルを受け付けました</h1>
<p>コースのお申し込みを取り消しました。またのご利用をお待ちしています。</p>
<p><a href="/menu">メニューへ戻る</a></p>
`)
		return err
	})
}
