package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mihara/courseflow/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface
// Returns an HTML error page on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html lang="ja">
<head><title>エラー</title></head>
<body>
<h1>エラーが発生しました</h1>
<p>しばらくしてからもう一度お試しください。</p>
<p><a href="/">ホームへ戻る</a></p>
</body>
</html>`))
}
