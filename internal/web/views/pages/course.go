package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// ChooseCourseData holds data for the course selection page
type ChooseCourseData struct {
	layout.PageData
	Courses []string
	// Reselect routes the links through the authenticated flow
	Reselect bool
}

// ChooseCourse renders the course catalog with selection links
func ChooseCourse(data ChooseCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		title := "コースを選ぶ"
		confirmPath := "/confirm_course"
		if data.Reselect {
			title = "コースを選び直す"
			confirmPath = "/confirm_course2"
		}

		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<ul class="course-list">
`, esc(title)); err != nil {
			return err
		}

		for _, course := range data.Courses {
			if _, err := fmt.Fprintf(w, `<li><a href="%s?course=%s">%sコース</a></li>
`, confirmPath, query(course), esc(course)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</ul>
`)
		return err
	})
}

// ConfirmCourseData holds data for the course confirmation pages
type ConfirmCourseData struct {
	layout.PageData
	Course string
}

// ConfirmCourse renders the pre-registration confirmation step
func ConfirmCourse(data ConfirmCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>コースの確認</h1>
<p>選択したコース: <strong class="course-name">%s</strong></p>
<p><a href="/register_course?course=%s">このコースで進む</a></p>
<p><a href="/choose_course">選び直す</a></p>
`, esc(data.Course), query(data.Course))
		return err
	})
}

// RegisterCourse renders the step that leads into account registration
func RegisterCourse(data ConfirmCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>お申し込み</h1>
<p><strong class="course-name">%s</strong>コースに申し込みます。</p>
<p>続けて利用者情報をご登録ください。</p>
<p><a href="/user_registration?course=%s">利用者登録へ</a></p>
`, esc(data.Course), query(data.Course))
		return err
	})
}

// ConfirmCourse2 renders the reselection confirmation with a submit form
func ConfirmCourse2(data ConfirmCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>コース変更の確認</h1>
<p>変更後のコース: <strong class="course-name">%s</strong></p>
<form action="/register_course2" method="post">
<input type="hidden" name="course" value="%s">
<button type="submit">このコースに変更する</button>
</form>
<p><a href="/reselect_course">選び直す</a></p>
`, esc(data.Course), esc(data.Course))
		return err
	})
}

// RegisterCourse2Done renders the reselection completion page
func RegisterCourse2Done(data ConfirmCourseData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>コースを変更しました</h1>
<p>新しいコース: <strong class="course-name">%s</strong></p>
<p><a href="/menu">メニューへ戻る</a></p>
`, esc(data.Course))
		return err
	})
}
