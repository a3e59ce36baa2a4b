package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/model"
)

// FlashMessage is a one-time notice shown on the next rendered page
type FlashMessage struct {
	Type    string // "success", "error", or "info"
	Message string
}

// PageData carries the fields every page shares
type PageData struct {
	Title string
	User  *model.User
	Flash *FlashMessage
}

// Base wraps page content in the common HTML shell: head, nav, flash
// banner, and footer.
func Base(data PageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s | コース申し込み</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body>
`, templ.EscapeString(data.Title)); err != nil {
			return err
		}

		if err := renderNav(w, data.User); err != nil {
			return err
		}

		if err := renderFlash(w, data.Flash); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main>
`); err != nil {
			return err
		}

		if err := content.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
</body>
</html>
`)
		return err
	})
}

func renderNav(w io.Writer, user *model.User) error {
	if _, err := io.WriteString(w, `<nav>
<a href="/">ホーム</a>
`); err != nil {
		return err
	}

	if user != nil {
		if _, err := fmt.Fprintf(w, `<a href="/menu">メニュー</a>
<span class="nav-user">%s さん</span>
<a href="/logout">ログアウト</a>
`, templ.EscapeString(user.Name)); err != nil {
			return err
		}
	} else {
		if _, err := io.WriteString(w, `<a href="/course_recommendation">コース診断</a>
<a href="/login">ログイン</a>
`); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, `</nav>
`)
	return err
}

func renderFlash(w io.Writer, flash *FlashMessage) error {
	if flash == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, `<div class="flash flash-%s" role="alert">%s</div>
`, templ.EscapeString(flash.Type), templ.EscapeString(flash.Message))
	return err
}
