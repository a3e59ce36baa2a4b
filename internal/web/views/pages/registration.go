package pages

import (
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// RegistrationData holds data for the registration form page
type RegistrationData struct {
	layout.PageData
	// Prefilled values on re-render after an error
	Name     string
	Birthday string
	Email    string
	Course   string
}

// Registration renders the user registration form
func Registration(data RegistrationData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>利用者登録</h1>
<form action="/submit_registration" method="post" class="registration-form">
`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<label>お名前 <input type="text" name="name" value="%s" required></label>
<label>生年月日 <input type="text" name="birthday" value="%s" placeholder="2000-01-01"></label>
<label>メールアドレス <input type="email" name="email1" value="%s" required></label>
<label>メールアドレス（確認） <input type="email" name="email2" required></label>
<label>パスワード <input type="password" name="password" required></label>
`, esc(data.Name), esc(data.Birthday), esc(data.Email)); err != nil {
			return err
		}

		if data.Course != "" {
			if _, err := fmt.Fprintf(w, `<p>お申し込みコース: <strong class="course-name">%s</strong></p>
<input type="hidden" name="course" value="%s">
`, esc(data.Course), esc(data.Course)); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `<button type="submit">登録する</button>
</form>
`)
		return err
	})
}

// ThankYouData holds data for the thank-you pages
type ThankYouData struct {
	layout.PageData
}

// ThankYouRegistration renders the post-registration page
func ThankYouRegistration(data ThankYouData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>ご登録ありがとうございます</h1>
<p>登録が完了しました。ログインしてメニューへお進みください。</p>
<p><a href="/login">ログインへ</a></p>
`)
		return err
	})
}

// ThankYouEdit renders the post-edit confirmation page
func ThankYouEdit(data ThankYouData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>変更を保存しました</h1>
<p>登録情報を更新しました。</p>
<p><a href="/menu">メニューへ戻る</a></p>
`)
		return err
	})
}
