package render

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

// Fragment is a list of rendered HTML pieces written back to back. It
// satisfies templ.Component so it can be served with templ.Handler.
type Fragment []template.HTML

var _ templ.Component = Fragment(nil)

// Render writes every piece in order.
func (f Fragment) Render(ctx context.Context, w io.Writer) error {
	for _, part := range f {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.WriteString(w, string(part)); err != nil {
			return err
		}
	}
	return nil
}

// String joins the pieces.
func (f Fragment) String() string {
	var n int
	for _, part := range f {
		n += len(part)
	}
	b := make([]byte, 0, n)
	for _, part := range f {
		b = append(b, part...)
	}
	return string(b)
}
