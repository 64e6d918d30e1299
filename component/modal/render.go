package modal

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/aydenstechdungeon/modalkit/component/icon"
	mtempl "github.com/aydenstechdungeon/modalkit/templ"
)

// Renderer writes modal trees as HTML.
type Renderer struct {
	// Icons renders glyph nodes. Defaults to icon.Default.
	Icons icon.Provider
}

// Render returns the HTML component for cfg using the default renderer.
// A closed modal renders nothing.
func Render(cfg Config) templ.Component {
	return Renderer{}.Render(cfg)
}

// Render returns the HTML component for cfg.
func (r Renderer) Render(cfg Config) templ.Component {
	return r.Node(Build(cfg))
}

// Node returns the HTML component for an already built tree.
func (r Renderer) Node(n *Node) templ.Component {
	if n == nil {
		return templ.NopComponent
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.write(ctx, w, n)
	})
}

func (r Renderer) icons() icon.Provider {
	if r.Icons == nil {
		return icon.Default
	}
	return r.Icons
}

func (r Renderer) write(ctx context.Context, w io.Writer, n *Node) error {
	if _, err := io.WriteString(w, "<"+n.Tag); err != nil {
		return err
	}
	if len(n.Classes) > 0 {
		if err := writeAttr(w, "class", n.Class()); err != nil {
			return err
		}
	}
	for _, a := range n.Attrs {
		if err := writeAttr(w, a.Key, a.Value); err != nil {
			return err
		}
	}
	if n.Activatable() {
		for key, value := range mtempl.OnClick(n.Action) {
			if err := writeAttr(w, key, value.(string)); err != nil {
				return err
			}
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if n.Icon != "" {
		if err := r.icons().Icon(n.Icon).Render(ctx, w); err != nil {
			return err
		}
	}
	if n.Text != "" {
		if _, err := io.WriteString(w, templ.EscapeString(n.Text)); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if err := r.write(ctx, w, child); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</"+n.Tag+">")
	return err
}

// writeAttr writes a single attribute. Empty values become boolean attributes.
func writeAttr(w io.Writer, key, value string) error {
	if value == "" {
		_, err := io.WriteString(w, " "+key)
		return err
	}
	_, err := io.WriteString(w, " "+key+`="`+templ.EscapeString(value)+`"`)
	return err
}
