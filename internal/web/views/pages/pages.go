// Package pages holds one templ component per page of the flow.
// Each component carries a typed data struct and renders inside the
// shared layout shell.
package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/mihara/courseflow/internal/web/views/layout"
)

// page wraps a body writer in the layout shell
func page(data layout.PageData, body func(w io.Writer) error) templ.Component {
	return layout.Base(data, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return body(w)
	}))
}

// esc escapes a value for HTML text and attribute positions
func esc(s string) string {
	return templ.EscapeString(s)
}

// query escapes a value for use in a URL query parameter
func query(s string) string {
	return url.QueryEscape(s)
}
