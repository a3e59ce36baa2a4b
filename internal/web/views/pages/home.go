package pages

import (
	"io"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// HomeData holds data for the landing page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page
func Home(data HomeData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>コース申し込みサイトへようこそ</h1>
<p>あなたに合ったコースを見つけて、申し込みまで進めます。</p>
<ul>
<li><a href="/course_recommendation">コース診断をはじめる</a></li>
<li><a href="/choose_course">コース一覧から選ぶ</a></li>
<li><a href="/login">登録済みの方はログイン</a></li>
</ul>
<p><a href="/new">サイトのご案内</a></p>
`)
		return err
	})
}

// SecondScreen renders the secondary landing page
func SecondScreen(data HomeData) templ.Component {
	return page(data.PageData, func(w io.Writer) error {
		_, err := io.WriteString(w, `<h1>サイトのご案内</h1>
<p>3つの質問に答えるだけで、おすすめのコースをご提案します。</p>
<p>気に入ったコースがあれば、そのまま申し込みできます。</p>
<p><a href="/course_recommendation">コース診断へ</a></p>
`)
		return err
	})
}
