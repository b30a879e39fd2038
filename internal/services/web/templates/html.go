package templates

import (
	"context"
	"html"
	"io"

	"github.com/a-h/templ"
)

// raw returns a component that writes markup verbatim. Callers own escaping.
func raw(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}

// text returns a component that writes escaped text content.
func text(content string) templ.Component {
	return raw(html.EscapeString(content))
}

// group renders components in order, stopping at the first error.
func group(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, component := range components {
			if component == nil {
				continue
			}
			if err := component.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// el wraps children in an opening and closing tag with pre-escaped attributes.
func el(open string, close string, children ...templ.Component) templ.Component {
	return group(raw(open), group(children...), raw(close))
}

func attr(value string) string {
	return html.EscapeString(value)
}
