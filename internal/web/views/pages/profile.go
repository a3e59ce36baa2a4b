package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// EditDataData holds data for the profile edit page
type EditDataData struct {
	layout.PageData
	Name     string
	Birthday string
	Email    string
	Course   string
	Courses  []string
}

// EditData renders the profile edit form, prefilled with current values
func EditData(data EditDataData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>登録情報の変更</h1>
<form action="/edit_data" method="post" class="edit-form">
<label>お名前 <input type="text" name="name" value="%s" required></label>
<label>生年月日 <input type="text" name="birthday" value="%s"></label>
<label>メールアドレス <input type="email" name="email" value="%s" required></label>
<label>コース <select name="course">
<option value="">未選択</option>
`, esc(data.Name), esc(data.Birthday), esc(data.Email)); err != nil {
			return err
		}

		for _, course := range data.Courses {
			selected := ""
			if course == data.Course {
				selected = " selected"
			}
			if _, err := fmt.Fprintf(w, `<option value="%s"%s>%s</option>
`, esc(course), selected, esc(course)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</select></label>
<button type="submit">保存する</button>
</form>
<p><a href="/menu">メニューへ戻る</a></p>
`)
		return err
	})
}
