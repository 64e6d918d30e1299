// Package icon provides the glyphs used by modalkit components.
package icon

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Name identifies a glyph.
type Name string

// XMark is the "x" glyph used by close controls.
const XMark Name = "xmark"

// Provider renders glyphs by name.
type Provider interface {
	Icon(name Name) templ.Component
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(name Name) templ.Component

// Icon implements Provider.
func (f ProviderFunc) Icon(name Name) templ.Component {
	return f(name)
}

type svgGlyph struct {
	viewBox string
	path    string
}

var glyphs = map[Name]svgGlyph{
	XMark: {
		viewBox: "0 0 384 512",
		path:    "M342.6 150.6c12.5-12.5 12.5-32.8 0-45.3s-32.8-12.5-45.3 0L192 210.7 86.6 105.4c-12.5-12.5-32.8-12.5-45.3 0s-12.5 32.8 0 45.3L146.7 256 41.4 361.4c-12.5 12.5-12.5 32.8 0 45.3s32.8 12.5 45.3 0L192 301.3 297.4 406.6c12.5 12.5 32.8 12.5 45.3 0s12.5-32.8 0-45.3L237.3 256 342.6 150.6z",
	},
}

// Default renders built-in glyphs as inline SVG. Unknown names render nothing.
var Default Provider = ProviderFunc(SVG)

// SVG returns an inline SVG component for name.
func SVG(name Name) templ.Component {
	g, ok := glyphs[name]
	if !ok {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<svg class="m-icon m-icon--%s" aria-hidden="true" focusable="false" xmlns="http://www.w3.org/2000/svg" viewBox="%s"><path fill="currentColor" d="%s"></path></svg>`,
			name, g.viewBox, g.path)
		return err
	})
}

// Known reports whether the default provider has a glyph for name.
func Known(name Name) bool {
	_, ok := glyphs[name]
	return ok
}
