package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// LoginData holds data for the login page
type LoginData struct {
	layout.PageData
	// Email is prefilled on re-render after a failed attempt
	Email string
}

// Login renders the login form
func Login(data LoginData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>ログイン</h1>
<form action="/login" method="post" class="login-form">
<label>メールアドレス <input type="email" name="email" value="%s" required></label>
<label>パスワード <input type="password" name="password" required></label>
<button type="submit">ログイン</button>
</form>
<p><a href="/user_registration">はじめての方はこちら</a></p>
`, esc(data.Email))
		return err
	})
}

// MenuData holds data for the authenticated landing page
type MenuData struct {
	layout.PageData
}

// Menu renders the authenticated menu page
func Menu(data MenuData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		user := data.User
		if _, err := fmt.Fprintf(w, `<h1>メニュー</h1>
<p>%s さんのページです。</p>
`, esc(user.Name)); err != nil {
			return err
		}

		if user.Course != "" {
			if _, err := fmt.Fprintf(w, `<p>現在のコース: <strong class="course-name">%s</strong></p>
`, esc(user.Course)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<p>現在お申し込み中のコースはありません。</p>
`); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<ul>
<li><a href="/edit_data">登録情報の確認・変更</a></li>
<li><a href="/reselect_course">コースの選び直し</a></li>
<li><a href="/cancel_course">コースのキャンセル</a></li>
<li><a href="/logout">ログアウト</a></li>
</ul>
`)
		return err
	})
}
